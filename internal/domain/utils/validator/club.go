package validator

import "unicode/utf8"

func ClubName(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 100
}

func ClubDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 1000
}
