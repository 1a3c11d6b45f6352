package gui

import (
	"strings"
	"testing"

	"github.com/marjoballabani/lazysurvey/pkg/session"
)

func typeInto(f *loginForm, s string) {
	for _, ch := range s {
		f.insert(ch)
	}
}

func TestLoginFormEditing(t *testing.T) {
	var f loginForm
	typeInto(&f, "admim")
	f.backspace()
	typeInto(&f, "n")
	f.toggleField()
	typeInto(&f, "pompeii2025")

	if f.username != "admin" {
		t.Errorf("username = %q, expected admin", f.username)
	}
	if f.password != "pompeii2025" {
		t.Errorf("password = %q, expected pompeii2025", f.password)
	}

	f.toggleField()
	if f.field != loginFieldUsername {
		t.Error("toggleField should cycle back to the username")
	}

	empty := loginForm{}
	empty.backspace()
	if empty.username != "" {
		t.Error("backspace on empty field should do nothing")
	}
}

func TestLoginFormMasksPassword(t *testing.T) {
	f := loginForm{username: "admin", password: "secret", field: loginFieldPassword}
	out := f.render()
	if strings.Contains(out, "secret") {
		t.Error("password must not be rendered in clear text")
	}
	if !strings.Contains(out, strings.Repeat("•", 6)) {
		t.Error("password should be rendered as one bullet per character")
	}
	if !strings.Contains(out, "admin") {
		t.Error("username should be visible")
	}
}

func TestLoginFormSubmit(t *testing.T) {
	gate := session.New("admin", "pompeii2025")

	f := loginForm{username: "admin", password: "pompeii2026"}
	if f.submit(gate) {
		t.Fatal("submit with wrong password should fail")
	}
	if f.err != "Invalid username or password" {
		t.Errorf("err = %q", f.err)
	}
	if f.password != "pompeii2026" {
		t.Error("form should stay editable after a failed attempt")
	}
	if !strings.Contains(f.render(), "Invalid username or password") {
		t.Error("error should be rendered inline")
	}

	f.backspace()
	typeInto(&f, "5")
	if !f.submit(gate) {
		t.Fatalf("submit with correct credentials failed: %s", f.err)
	}
	if !gate.Authenticated() {
		t.Error("gate should be authenticated")
	}
	if f.username != "" || f.password != "" || f.err != "" {
		t.Error("form should be cleared after a successful sign-in")
	}
}
