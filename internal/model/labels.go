// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

// Package model provides concrete grid data models: an editable dense
// matrix, JSON and INI document views, and an S3 object listing. Each
// owns its storage, embeds grid.BaseModel for the notification channel,
// and emits the most specific change event the mutation allows.
package model

import (
	"strconv"

	"github.com/tgrid/tgrid/internal/grid"
)

// numberLabels returns 1-based row header labels for n rows. Models
// cache the result so the Data hot path never formats.
func numberLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

// columnName returns the spreadsheet-style name of column i:
// A..Z, AA..AZ, BA.. and so on.
func columnName(i int) string {
	var name []byte
	for i >= 0 {
		name = append([]byte{byte('A' + i%26)}, name...)
		i = i/26 - 1
	}
	return string(name)
}

// columnLabels returns spreadsheet column header labels for n columns.
func columnLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = columnName(i)
	}
	return labels
}

// tagOf classifies a stored string for painter selection.
func tagOf(s string) string {
	if s == "" {
		return grid.TypeBlank
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return grid.TypeNumber
	}
	return grid.TypeText
}
