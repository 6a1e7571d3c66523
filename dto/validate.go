// Package dto holds the wire records handlers receive and return, together
// with their declared field constraints and the message reported per
// violation.
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/keerthi6166/insurance-backend/apperr"
)

// messages maps "Struct.Field.tag" to the text reported for that violation.
var messages = func() map[string]string {
	m := map[string]string{}
	for _, src := range []map[string]string{customerMessages, policyMessages, claimMessages, paymentMessages} {
		for k, v := range src {
			m[k] = v
		}
	}
	return m
}()

// Validate checks a wire record against its declared constraints. All
// violations are reported together in a single validation fault, joined
// with "; ".
func Validate(v *validator.Validate, rec any) error {
	err := v.Struct(rec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.StructNamespace() + "." + fe.Tag()
		if msg, found := messages[key]; found {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fe.Error())
		}
	}
	return apperr.Validation(strings.Join(msgs, "; "))
}
