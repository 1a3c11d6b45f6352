package gui

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/marjoballabani/lazysurvey/pkg/session"
)

const (
	loginFieldUsername = iota
	loginFieldPassword
)

// loginForm is the sign-in modal's input state.
type loginForm struct {
	username string
	password string
	field    int
	err      string
}

func (f *loginForm) active() *string {
	if f.field == loginFieldPassword {
		return &f.password
	}
	return &f.username
}

func (f *loginForm) insert(ch rune) {
	s := f.active()
	*s += string(ch)
}

func (f *loginForm) backspace() {
	s := f.active()
	if *s == "" {
		return
	}
	r := []rune(*s)
	*s = string(r[:len(r)-1])
}

func (f *loginForm) toggleField() {
	if f.field == loginFieldUsername {
		f.field = loginFieldPassword
	} else {
		f.field = loginFieldUsername
	}
}

// submit checks the form against the gate. A failed attempt keeps both
// values so they can be corrected.
func (f *loginForm) submit(gate *session.Gate) bool {
	if err := gate.Submit(f.username, f.password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			f.err = err.Error()
		} else {
			f.err = "Sign-in failed"
		}
		return false
	}
	*f = loginForm{}
	return true
}

func (f *loginForm) clear() {
	*f = loginForm{}
}

// render draws the form. The password is masked one bullet per character.
func (f *loginForm) render() string {
	var b strings.Builder
	b.WriteString("\n  \033[36mPompeii Food & Drink Survey\033[0m\n")
	b.WriteString("  \033[90mSign in to browse the feature sheets\033[0m\n\n")

	fields := []struct {
		label string
		value string
		index int
	}{
		{"Username", f.username, loginFieldUsername},
		{"Password", strings.Repeat("•", len([]rune(f.password))), loginFieldPassword},
	}
	for _, fl := range fields {
		marker := "  "
		cursor := ""
		if fl.index == f.field {
			marker = "\033[33m›\033[0m "
			cursor = "\033[7m \033[0m"
		}
		fmt.Fprintf(&b, "  %s\033[33m%-9s\033[0m %s%s\n\n", marker, fl.label+":", fl.value, cursor)
	}

	if f.err != "" {
		fmt.Fprintf(&b, "  \033[31m%s\033[0m\n\n", f.err)
	}
	b.WriteString("  \033[90mTab switch field · Enter sign in · Ctrl+C quit\033[0m")
	return b.String()
}
