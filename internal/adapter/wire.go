// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-crm-sync/models"
)

const (
	fieldID           = "Id"
	fieldLastModified = "LastModifiedDate"
	fieldIsDeleted    = "IsDeleted"
	fieldAttributes   = "attributes"

	// remoteTimeLayout is the timestamp format of record payloads.
	remoteTimeLayout = "2006-01-02T15:04:05.000-0700"
	// soqlTimeLayout is the unquoted datetime literal accepted in queries.
	soqlTimeLayout = "2006-01-02T15:04:05Z"
)

type queryPage struct {
	TotalSize      int              `json:"totalSize"`
	Done           bool             `json:"done"`
	NextRecordsURL string           `json:"nextRecordsUrl"`
	Records        []map[string]any `json:"records"`
}

type searchResult struct {
	SearchRecords []map[string]any `json:"searchRecords"`
}

type remoteError struct {
	StatusCode string   `json:"statusCode"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields"`
}

type saveResult struct {
	ID      string        `json:"id"`
	Success bool          `json:"success"`
	Errors  []remoteError `json:"errors"`
}

func (r saveResult) errorMessage() string {
	if len(r.Errors) == 0 {
		return "unknown error"
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.StatusCode+": "+e.Message)
	}
	return strings.Join(msgs, "; ")
}

type compositeRequest struct {
	AllOrNone bool             `json:"allOrNone"`
	Records   []map[string]any `json:"records"`
}

func compositeRecord(desc models.ObjectDescriptor, id string, fields models.Fields) map[string]any {
	rec := map[string]any(fields.Only(desc.Writable()))
	rec[fieldAttributes] = map[string]string{"type": desc.RemoteName}
	if id != "" {
		rec[fieldID] = id
	}
	return rec
}

func sobjectPath(desc models.ObjectDescriptor, id string) string {
	if id == "" {
		return "/sobjects/" + desc.RemoteName
	}
	return "/sobjects/" + desc.RemoteName + "/" + id
}

func selectFields(desc models.ObjectDescriptor) []string {
	out := make([]string, 0, len(desc.Fields)+2)
	out = append(out, fieldID, fieldLastModified)
	return append(out, desc.Fields...)
}

func buildSOQL(desc models.ObjectDescriptor, where string, limit int) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(selectFields(desc), ", "))
	b.WriteString(" FROM ")
	b.WriteString(desc.RemoteName)
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	b.WriteString(" ORDER BY LastModifiedDate DESC")
	if limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(limit))
	}
	return b.String()
}

func soqlDateTime(t time.Time) string {
	return t.UTC().Format(soqlTimeLayout)
}

const searchReserved = `?&|!{}[]()^~*:\"'+-`

// escapeSearchTerm backslash-escapes characters reserved by the search syntax.
func escapeSearchTerm(term string) string {
	var b strings.Builder
	for _, r := range term {
		if strings.ContainsRune(searchReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toRemoteRecord(desc models.ObjectDescriptor, raw map[string]any) models.RemoteRecord {
	rec := models.RemoteRecord{
		Type:   desc.Type,
		Fields: models.Fields(raw).Only(desc.Fields),
	}
	if id, ok := raw[fieldID].(string); ok {
		rec.ID = id
	}
	if ts, ok := raw[fieldLastModified].(string); ok {
		rec.LastModifiedAt = parseRemoteTime(ts)
	}
	if deleted, ok := raw[fieldIsDeleted].(bool); ok {
		rec.Deleted = deleted
	}
	return rec
}

func parseRemoteTime(raw string) time.Time {
	for _, layout := range []string{remoteTimeLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
