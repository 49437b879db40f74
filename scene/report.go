// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/collide/base/iox/jsonx"
	"cogentcore.org/collide/collide"
	"cogentcore.org/collide/logx"
)

// Contact is an overlapping pair of bodies.
type Contact struct {
	A      string         `json:"a"`
	B      string         `json:"b"`
	Result collide.Result `json:"result"`
}

// Hit is the nearest body hit by a ray; Body is empty on a miss.
type Hit struct {
	Ray            string `json:"ray"`
	Body           string `json:"body,omitempty"`
	collide.RayHit `json:"hit"`
}

// FrameReport is the outcome of one simulated frame.
type FrameReport struct {
	Frame int `json:"frame"`

	// Pending are the mesh bodies still waiting for their mesh.
	Pending []string `json:"pending,omitempty"`

	Contacts []Contact `json:"contacts,omitempty"`

	// Unsupported is the number of pairs without an intersection test.
	Unsupported int `json:"unsupported,omitempty"`

	Hits []Hit `json:"hits,omitempty"`

	// Visible are the bodies inside the camera frustum.
	Visible []string `json:"visible,omitempty"`

	// Drawn is the number of shapes registered for debug drawing.
	Drawn int `json:"drawn"`
}

// Report is the outcome of a run.
type Report struct {
	Frames []*FrameReport `json:"frames"`
}

// Contacts returns the total number of contacts over all frames.
func (r *Report) Contacts() int {
	n := 0
	for _, fr := range r.Frames {
		n += len(fr.Contacts)
	}
	return n
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	return jsonx.Write(r, w)
}

// WriteText writes the report as human readable text,
// colored when [logx.UseColor] is on.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, fr := range r.Frames {
		fmt.Fprintf(&b, "%s %d: %d drawn", logx.CmdColor("frame"), fr.Frame, fr.Drawn)
		if len(fr.Pending) > 0 {
			fmt.Fprintf(&b, ", %s", logx.WarnColor("pending "+strings.Join(fr.Pending, " ")))
		}
		if fr.Unsupported > 0 {
			fmt.Fprintf(&b, ", %d unsupported pairs", fr.Unsupported)
		}
		b.WriteByte('\n')
		for _, c := range fr.Contacts {
			fmt.Fprintf(&b, "  %s %s %s: %v\n", logx.ErrorColor("contact"), c.A, c.B, c.Result)
		}
		for _, h := range fr.Hits {
			if h.Body == "" {
				fmt.Fprintf(&b, "  ray %s: miss\n", h.Ray)
				continue
			}
			fmt.Fprintf(&b, "  ray %s: %s %s\n", h.Ray, logx.SuccessColor(h.Body), h.RayHit)
		}
		if len(fr.Visible) > 0 {
			fmt.Fprintf(&b, "  visible: %s\n", strings.Join(fr.Visible, " "))
		}
	}
	fmt.Fprintf(&b, "%d frames, %d contacts\n", len(r.Frames), r.Contacts())
	_, err := io.WriteString(w, b.String())
	return err
}
