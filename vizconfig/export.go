// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizconfig

import (
	"encoding/json"
)

// EventType is the name of the event that carries an exported config.
const EventType = "updateMapConfig"

// Event is the payload announced to external consumers whenever the
// configuration changes.
type Event struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// Export returns the persisted form of c: indented JSON without the
// transient runtime and newViz fields.
func (c *Config) Export() ([]byte, error) {
	type plain Config
	doc := struct {
		*plain
		// These shadow the embedded fields and, being nil,
		// are omitted.
		Runtime *Runtime `json:"runtime,omitempty"`
		NewViz  *bool    `json:"newViz,omitempty"`
	}{plain: (*plain)(c)}
	return json.MarshalIndent(doc, "", "  ")
}

// Event returns the change notification for c.
func (c *Config) Event() (Event, error) {
	doc, err := c.Export()
	if err != nil {
		return Event{}, err
	}
	return Event{Type: EventType, Detail: string(doc)}, nil
}
