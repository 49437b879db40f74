// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command collide runs collision scenes and builds convex hulls
// of mesh files.
//
//	collide run scene.toml [-frames N] [-watch] [-json]
//	collide hull mesh.obj [-plane XZ] [-recursive]
//	collide batch commands.txt
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/collide/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a := &app{out: os.Stdout}
	if err := newRoot(a).ExecuteContext(ctx); err != nil {
		logx.PrintlnError("collide: ", err)
		stop()
		os.Exit(1)
	}
}
