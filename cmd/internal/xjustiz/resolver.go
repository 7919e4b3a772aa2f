package xjustiz

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoRegisterReference means the filing carried neither a structured
// register number nor any free text to parse one from. The company cannot be
// keyed and is skipped; the batch goes on.
var ErrNoRegisterReference = errors.New("xjustiz: no register number and no file reference in message")

// filePattern matches the printed form of a register file number, e.g.
// "HRB 12345 B": register type letters, running number, suffix letters.
var filePattern = regexp.MustCompile(`([A-Za-z]+)\s+(\d+)\s+([A-Z]+)`)

// RegisterReference carries the pieces the company identifier is derived
// from. Resolve may rewrite RegisterCode/RegisterNumber/RegisterNumberAddition
// in place when it has to fall back to free text; callers persist the
// rewritten values.
type RegisterReference struct {
	CourtSenderCode        *string
	RegisterCode           *string
	RegisterNumber         *string
	RegisterNumberAddition *string

	// Fallback sources, in order of preference.
	FreeText            *string // tns:aktenzeichen.freitext
	SenderFileReference *string // tns:aktenzeichen.absender from the message head
}

// Resolve derives the company number. With a structured register number
// present it is {court}_{type}{number}{addition?}. Otherwise the free-text
// file reference is parsed with filePattern; on a match the three captured
// groups replace type, number and addition. Without a match the free text
// itself stands in as the number, which still yields a usable (if ugly) key.
// The result depends only on the input fields.
func (r *RegisterReference) Resolve() (string, error) {
	if r.RegisterNumber == nil {
		raw := r.FreeText
		if raw == nil {
			raw = r.SenderFileReference
		}
		if raw == nil {
			return "", ErrNoRegisterReference
		}
		r.RegisterNumber = raw

		if m := filePattern.FindStringSubmatch(*raw); m != nil {
			r.RegisterCode = &m[1]
			r.RegisterNumber = &m[2]
			r.RegisterNumberAddition = &m[3]
		}
	}

	id := fmt.Sprintf("%s_%s%s", deref(r.CourtSenderCode), deref(r.RegisterCode), deref(r.RegisterNumber))
	if r.RegisterNumberAddition != nil {
		id += *r.RegisterNumberAddition
	}
	return id, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
