package validator

import (
	"net/mail"
	"unicode/utf8"
)

func Email(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Password(password string) bool {
	return utf8.RuneCountInString(password) >= 6
}

func UserName(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 100
}
