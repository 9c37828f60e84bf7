package consumer

var (
	FormatCreatedMessage      = formatCreatedMessage
	FormatDecidedMessage      = formatDecidedMessage
	FormatDecidedAdminMessage = formatDecidedAdminMessage
)
