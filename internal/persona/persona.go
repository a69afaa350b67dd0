// Package persona selects the instruction prefix for a role and composes prompts.
package persona

const (
	RoleExpert    = "expert"
	RoleFriend    = "friend"
	RoleAssistant = "assistant"
)

const (
	ExpertInstruction    = "You are a knowledgeable expert on the topic. Provide a detailed and professional response."
	FriendInstruction    = "You are a supportive friend. Respond in a casual, warm tone and offer practical advice."
	AssistantInstruction = "You are a helpful assistant. Respond politely and clearly."
)

// Resolve maps a requested role onto one of the three known roles.
// Matching is exact; anything else, including "", is the assistant.
func Resolve(role string) string {
	switch role {
	case RoleExpert, RoleFriend:
		return role
	default:
		return RoleAssistant
	}
}

// Instruction returns the persona text for role.
func Instruction(role string) string {
	switch Resolve(role) {
	case RoleExpert:
		return ExpertInstruction
	case RoleFriend:
		return FriendInstruction
	default:
		return AssistantInstruction
	}
}

// Compose builds the prompt sent upstream. The question is passed through verbatim.
func Compose(role, question string) string {
	return Instruction(role) + "\nUser: " + question
}
