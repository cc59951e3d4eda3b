package llmsdk

// ChatRole is the author role of a chat message: "system", "user",
// "assistant", or "tool".
//
// https://platform.openai.com/docs/guides/chat/introduction
type ChatRole string

const (
	// ChatRoleSystem grounds the model within the context of the
	// conversation, e.g. global instructions it should follow.
	ChatRoleSystem ChatRole = "system"

	// ChatRoleUser is an end-user message.
	ChatRoleUser ChatRole = "user"

	// ChatRoleAssistant is a model-generated message.
	ChatRoleAssistant ChatRole = "assistant"

	// ChatRoleTool carries the result of a tool call back to the model.
	ChatRoleTool ChatRole = "tool"
)
