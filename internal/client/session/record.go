package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Roles a session can carry in its "userType" field.
const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
)

// Record is the cached identity of the signed-in user: the login response
// fields plus "userType". Unknown fields are kept verbatim.
type Record map[string]any

// NewRecord merges a login response with the role tag. The response is not
// modified.
func NewRecord(response map[string]any, role string) Record {
	r := make(Record, len(response)+1)
	for k, v := range response {
		r[k] = v
	}
	r["userType"] = role
	return r
}

func (r Record) str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ID returns the user id as text; numeric ids are printed without decoration.
func (r Record) ID() string { return r.str("id") }

func (r Record) Name() string     { return r.str("name") }
func (r Record) Email() string    { return r.str("email") }
func (r Record) UserType() string { return r.str("userType") }

// FirstName is the first word of the name, or the email when there is no name.
func (r Record) FirstName() string {
	if f := strings.Fields(r.Name()); len(f) > 0 {
		return f[0]
	}
	return r.Email()
}

// RoleLabel returns "Customer" or "Agent" for known roles, "" otherwise.
func (r Record) RoleLabel() string {
	switch r.UserType() {
	case RoleCustomer:
		return "Customer"
	case RoleAgent:
		return "Agent"
	default:
		return ""
	}
}

func decodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var r Record
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("session record is null")
	}
	return r, nil
}
