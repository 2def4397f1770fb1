package validator

import "unicode/utf8"

func AnnouncementTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 1 && utf8.RuneCountInString(title) <= 200
}

func AnnouncementType(announcementType string) bool {
	switch announcementType {
	case "general", "urgent", "event":
		return true
	}
	return false
}
