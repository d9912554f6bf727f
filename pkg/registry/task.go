package registry

// TaskType is a category of work a prompt can request.
type TaskType string

const (
	TaskCode          TaskType = "code"
	TaskWriting       TaskType = "writing"
	TaskReasoning     TaskType = "reasoning"
	TaskSummarization TaskType = "summarization"
	TaskConversation  TaskType = "conversation"
	TaskResearch      TaskType = "research"
	TaskTranslation   TaskType = "translation"
	TaskData          TaskType = "data"
)

// TaskTypes lists every task type in canonical order. Classification and
// tie-breaking depend on this order, so it must not be rearranged.
var TaskTypes = []TaskType{
	TaskCode,
	TaskWriting,
	TaskReasoning,
	TaskSummarization,
	TaskConversation,
	TaskResearch,
	TaskTranslation,
	TaskData,
}

// ParseTaskType returns the task type for s, or false if s is not one of
// the eight known categories.
func ParseTaskType(s string) (TaskType, bool) {
	for _, t := range TaskTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
