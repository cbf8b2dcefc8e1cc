package validator

import "strings"

// InviteList collects email addresses one at a time before an invite is
// sent.
type InviteList struct {
	emails []string
}

// Add trims email and appends it when it is valid and not already listed.
func (l *InviteList) Add(email string) error {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return FieldErrors{"email": InvalidEmailMessage}
	}
	for _, e := range l.emails {
		if e == email {
			return FieldErrors{"email": DuplicateEmailMessage}
		}
	}
	l.emails = append(l.emails, email)
	return nil
}

// Remove drops email from the list.
func (l *InviteList) Remove(email string) {
	out := l.emails[:0]
	for _, e := range l.emails {
		if e != email {
			out = append(out, e)
		}
	}
	l.emails = out
}

// Emails returns a copy of the listed addresses.
func (l *InviteList) Emails() []string {
	return append([]string(nil), l.emails...)
}

// Validate fails when nothing has been added.
func (l *InviteList) Validate() error {
	if len(l.emails) == 0 {
		return FieldErrors{"emails": EmptyInviteListMessage}
	}
	return nil
}

// Reset empties the list after a successful send.
func (l *InviteList) Reset() {
	l.emails = nil
}
