// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownIDPrefix is returned when a remote ID carries a key prefix
	// that is not registered in the [ObjectTypeRegistry].
	ErrUnknownIDPrefix = errors.New("unknown remote id prefix")

	// ErrUnsupportedObjectType is returned for object types outside of the
	// fixed synchronized set.
	ErrUnsupportedObjectType = errors.New("unsupported object type")
)

// ObjectType is one of the remote object kinds kept in sync.
type ObjectType string

const (
	Lead     ObjectType = "Lead"
	Contact  ObjectType = "Contact"
	Case     ObjectType = "Case"
	Activity ObjectType = "Activity"
)

// ObjectDescriptor describes how one object type maps onto the remote API.
type ObjectDescriptor struct {
	Type ObjectType

	// RemoteName is the sobject name used in API paths and queries.
	RemoteName string

	// IDPrefix is the three-character key prefix of remote record IDs.
	IDPrefix string

	// NaturalKey is the field used to match remote and local records that
	// are not linked yet. Empty means records are only matched by remote ID.
	NaturalKey string

	// Fields lists the synchronized fields.
	Fields []string

	// ReadOnly lists fields that are pulled but never pushed.
	ReadOnly []string
}

// Writable returns the fields that may be sent to the remote side.
func (d ObjectDescriptor) Writable() []string {
	readOnly := make(map[string]struct{}, len(d.ReadOnly))
	for _, f := range d.ReadOnly {
		readOnly[f] = struct{}{}
	}

	out := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		if _, ok := readOnly[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// ObjectTypeRegistry is the lookup table for supported object types and
// their ID prefixes. It is built once at startup and read-only afterwards.
type ObjectTypeRegistry struct {
	byType   map[ObjectType]ObjectDescriptor
	byPrefix map[string]ObjectType
	byRemote map[string]ObjectType
}

// NewObjectTypeRegistry builds a registry from descriptors. Duplicate types,
// prefixes or remote names are rejected.
func NewObjectTypeRegistry(descriptors ...ObjectDescriptor) (*ObjectTypeRegistry, error) {
	r := &ObjectTypeRegistry{
		byType:   make(map[ObjectType]ObjectDescriptor, len(descriptors)),
		byPrefix: make(map[string]ObjectType, len(descriptors)),
		byRemote: make(map[string]ObjectType, len(descriptors)),
	}

	for _, d := range descriptors {
		if len(d.IDPrefix) != 3 {
			return nil, fmt.Errorf("object type %s: id prefix %q must be 3 characters", d.Type, d.IDPrefix)
		}
		if _, dup := r.byType[d.Type]; dup {
			return nil, fmt.Errorf("object type %s registered twice", d.Type)
		}
		if other, dup := r.byPrefix[d.IDPrefix]; dup {
			return nil, fmt.Errorf("id prefix %s shared by %s and %s", d.IDPrefix, other, d.Type)
		}
		if other, dup := r.byRemote[d.RemoteName]; dup {
			return nil, fmt.Errorf("remote name %s shared by %s and %s", d.RemoteName, other, d.Type)
		}

		r.byType[d.Type] = d
		r.byPrefix[d.IDPrefix] = d.Type
		r.byRemote[d.RemoteName] = d.Type
	}

	return r, nil
}

// DefaultObjectTypes returns the descriptors of the four synchronized types.
func DefaultObjectTypes() []ObjectDescriptor {
	return []ObjectDescriptor{
		{
			Type:       Lead,
			RemoteName: "Lead",
			IDPrefix:   "00Q",
			NaturalKey: "Email",
			Fields:     []string{"FirstName", "LastName", "Email", "Phone", "Company", "Status", "LeadSource"},
		},
		{
			Type:       Contact,
			RemoteName: "Contact",
			IDPrefix:   "003",
			NaturalKey: "Email",
			Fields:     []string{"FirstName", "LastName", "Email", "Phone", "MobilePhone", "MailingCity"},
		},
		{
			Type:       Case,
			RemoteName: "Case",
			IDPrefix:   "500",
			NaturalKey: "CaseNumber",
			Fields:     []string{"CaseNumber", "Subject", "Status", "Priority", "Origin", "Description"},
			ReadOnly:   []string{"CaseNumber"},
		},
		{
			Type:       Activity,
			RemoteName: "Task",
			IDPrefix:   "00T",
			Fields:     []string{"Subject", "Status", "Priority", "ActivityDate", "Description"},
		},
	}
}

// MustDefaultRegistry builds the registry for [DefaultObjectTypes].
// The default table is static, so a failure here is a programming error.
func MustDefaultRegistry() *ObjectTypeRegistry {
	r, err := NewObjectTypeRegistry(DefaultObjectTypes()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Describe returns the descriptor for t.
func (r *ObjectTypeRegistry) Describe(t ObjectType) (ObjectDescriptor, error) {
	d, ok := r.byType[t]
	if !ok {
		return ObjectDescriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedObjectType, t)
	}
	return d, nil
}

// TypeForID resolves the object type of a remote ID from its key prefix.
func (r *ObjectTypeRegistry) TypeForID(remoteID string) (ObjectType, error) {
	if len(remoteID) < 3 {
		return "", fmt.Errorf("%w: id %q is too short", ErrUnknownIDPrefix, remoteID)
	}

	t, ok := r.byPrefix[remoteID[:3]]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownIDPrefix, remoteID[:3])
	}
	return t, nil
}

// TypeForName resolves either a local type name or a remote sobject name.
func (r *ObjectTypeRegistry) TypeForName(name string) (ObjectType, error) {
	if _, ok := r.byType[ObjectType(name)]; ok {
		return ObjectType(name), nil
	}
	if t, ok := r.byRemote[name]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedObjectType, name)
}

// Types returns all registered types in a stable order.
func (r *ObjectTypeRegistry) Types() []ObjectType {
	out := make([]ObjectType, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AllTypes tags audit entries that cover a whole sync pass rather than one
// object type.
const AllTypes ObjectType = "ALL"
