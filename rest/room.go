package rest

// RoomType identifies the kind of chat room an API call targets.
type RoomType string

const (
	// RoomTypeChannel is a public channel.
	RoomTypeChannel RoomType = "channel"
	// RoomTypePrivateGroup is a private group.
	RoomTypePrivateGroup RoomType = "privateGroup"
	// RoomTypeDirectMessage is a direct-message conversation.
	RoomTypeDirectMessage RoomType = "directMessage"
	// RoomTypeLivechat is a livechat conversation.
	RoomTypeLivechat RoomType = "livechat"
)

// APIMethodName maps a room type and method to its REST endpoint name,
// e.g. (RoomTypeChannel, "history") -> "channels.history". Unrecognized
// room types fall back to the channel prefix; this mirrors the server's
// behavior for custom room types and is not an error.
func APIMethodName(roomType RoomType, method string) string {
	switch roomType {
	case RoomTypeChannel:
		return "channels." + method
	case RoomTypePrivateGroup:
		return "groups." + method
	case RoomTypeDirectMessage:
		return "dm." + method
	default:
		return "channels." + method
	}
}
