// SPDX-License-Identifier: Unlicense OR MIT

//go:build openbsd || freebsd || android || ios || js
// +build openbsd freebsd android ios js

package main

import (
	"context"
	"errors"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/config"
)

func runDesktop(ctx context.Context, cfg config.Config, opts []app.Option) error {
	return errors.New("the desktop backend is not supported on this platform")
}
