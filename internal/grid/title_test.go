// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type titleCounter struct {
	count int
	last  *Title
}

func (c *titleCounter) TitleChanged(t *Title) {
	c.count++
	c.last = t
}

func TestTitleOwnerIsFixed(t *testing.T) {
	owner := struct{ name string }{name: "panel"}
	title := NewTitle(owner)
	require.Equal(t, owner, title.Owner())
	require.Equal(t, -1, title.Mnemonic())
}

func TestTitleSettersNotifyOnlyOnChange(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Title)
	}{
		{name: "label", set: func(tt *Title) { tt.SetLabel("Instances") }},
		{name: "mnemonic", set: func(tt *Title) { tt.SetMnemonic(0) }},
		{name: "icon", set: func(tt *Title) { tt.SetIcon("table") }},
		{name: "caption", set: func(tt *Title) { tt.SetCaption("EC2 instances by region") }},
		{name: "class name", set: func(tt *Title) { tt.SetClassName("wide") }},
		{name: "closable", set: func(tt *Title) { tt.SetClosable(true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := NewTitle(nil)
			counter := &titleCounter{}
			title.AddListener(counter)

			tt.set(title)
			require.Equal(t, 1, counter.count, "first write must notify exactly once")
			require.Same(t, title, counter.last)

			tt.set(title)
			require.Equal(t, 1, counter.count, "writing the current value back must not notify")
		})
	}
}

func TestTitleFieldRoundTrip(t *testing.T) {
	title := NewTitle(nil)
	title.SetLabel("Buckets")
	title.SetMnemonic(2)
	title.SetIcon("s3")
	title.SetCaption("All buckets")
	title.SetClassName("narrow")
	title.SetClosable(true)

	require.Equal(t, "Buckets", title.Label())
	require.Equal(t, 2, title.Mnemonic())
	require.Equal(t, "s3", title.Icon())
	require.Equal(t, "All buckets", title.Caption())
	require.Equal(t, "narrow", title.ClassName())
	require.True(t, title.Closable())
}

func TestTitleDataset(t *testing.T) {
	title := NewTitle(nil)
	counter := &titleCounter{}
	title.AddListener(counter)

	require.Empty(t, title.Data("missing"), "absent keys read back as empty")

	title.SetData("region", "us-east-1")
	require.Equal(t, "us-east-1", title.Data("region"))
	require.Equal(t, 1, counter.count)

	title.SetData("region", "us-east-1")
	require.Equal(t, 1, counter.count, "unchanged value must not notify")

	// Empty string deletes the key.
	title.SetData("region", "")
	require.Empty(t, title.Data("region"))
	require.Equal(t, 2, counter.count)

	// Deleting an absent key is a no-op.
	title.SetData("region", "")
	require.Equal(t, 2, counter.count)
}

func TestTitleUpdateDataCoalesces(t *testing.T) {
	title := NewTitle(nil)
	title.SetData("a", "1")
	title.SetData("b", "2")

	counter := &titleCounter{}
	title.AddListener(counter)

	// Two changed keys, one unchanged: exactly one notification.
	title.UpdateData(map[string]string{"a": "1", "b": "3", "c": "4"})
	require.Equal(t, 1, counter.count)
	require.Equal(t, "1", title.Data("a"))
	require.Equal(t, "3", title.Data("b"))
	require.Equal(t, "4", title.Data("c"))

	// Nothing changed: zero notifications.
	title.UpdateData(map[string]string{"a": "1", "b": "3"})
	require.Equal(t, 1, counter.count)

	// Batch deletion counts as a change.
	title.UpdateData(map[string]string{"a": "", "b": ""})
	require.Equal(t, 2, counter.count)
	require.Empty(t, title.Data("a"))
	require.Empty(t, title.Data("b"))
}

func TestTitleRemoveListener(t *testing.T) {
	title := NewTitle(nil)
	counter := &titleCounter{}
	title.AddListener(counter)
	title.SetLabel("x")
	title.RemoveListener(counter)
	title.SetLabel("y")
	require.Equal(t, 1, counter.count)
}
