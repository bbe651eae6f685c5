package logging

import "strings"

// Redacted replaces the value of any attribute whose key names a credential
// or an inline image payload.
const Redacted = "[redacted]"

var secretKeys = map[string]struct{}{
	"password":         {},
	"confirm_password": {},
	"confirmpassword":  {},
	"image":            {},
}

// redact returns args with secret values masked. args is not modified.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		if _, secret := secretKeys[strings.ToLower(key)]; !secret {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i+1] = Redacted
	}
	if out == nil {
		return args
	}
	return out
}
