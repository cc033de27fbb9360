package dogbot

import "strings"

type MemberStatus string

const (
	MemberStatusCreator       MemberStatus = "creator"
	MemberStatusAdministrator MemberStatus = "administrator"
	MemberStatusMember        MemberStatus = "member"
	MemberStatusRestricted    MemberStatus = "restricted"
	MemberStatusLeft          MemberStatus = "left"
	MemberStatusKicked        MemberStatus = "kicked"
)

type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSuperGroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

func MapChatTypeToText(chatType ChatType) string {
	switch chatType {
	case ChatTypePrivate:
		return "private chat"
	case ChatTypeGroup:
		return "group"
	case ChatTypeSuperGroup:
		return "supergroup"
	case ChatTypeChannel:
		return "channel"
	default:
		return string(chatType)
	}
}

func MapMemberStatusToText(status MemberStatus) string {
	switch status {
	case MemberStatusCreator:
		return "creator"
	case MemberStatusAdministrator:
		return "administrator"
	case MemberStatusMember:
		return "member"
	case MemberStatusRestricted:
		return "restricted"
	case MemberStatusLeft:
		return "left"
	case MemberStatusKicked:
		return "kicked"
	default:
		return string(status)
	}
}

func FullNameFromFirstAndLastName(firstName, lastName string) string {
	if lastName == "" {
		return firstName
	}
	if firstName == "" {
		return lastName
	}

	return strings.Join([]string{firstName, lastName}, " ")
}
