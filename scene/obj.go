// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadOBJ reads the vertex positions of a Wavefront OBJ stream as flat
// x, y, z triples. Only `v` lines are used; an optional w component
// is ignored, and all other statements are skipped.
func ReadOBJ(r io.Reader) ([]float32, error) {
	var verts []float32
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "v" {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates, has %d", ln, len(fields)-1)
		}
		for _, f := range fields[1:4] {
			x, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", ln, err)
			}
			verts = append(verts, float32(x))
		}
	}
	return verts, sc.Err()
}

// OpenOBJ reads the vertex positions of the given OBJ file.
func OpenOBJ(filename string) ([]float32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadOBJ(bufio.NewReader(f))
}
