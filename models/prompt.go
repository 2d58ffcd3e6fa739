package models

// PromptStage identifies a pipeline stage whose system prompt can be
// overridden by an administrator.
type PromptStage string

const (
	StageNiches      PromptStage = "niches"
	StageTOC         PromptStage = "toc"
	StageChapters    PromptStage = "chapters"
	StageGhostwriter PromptStage = "ghostwriter"
	StageMentor      PromptStage = "mentor"
)

// PromptStages lists the stages in pipeline order.
var PromptStages = []PromptStage{StageNiches, StageTOC, StageChapters, StageGhostwriter, StageMentor}

// Valid reports whether s names a known stage.
func (s PromptStage) Valid() bool {
	for _, stage := range PromptStages {
		if s == stage {
			return true
		}
	}
	return false
}

// PromptOverrides maps stage keys to administrator supplied system prompts.
type PromptOverrides map[PromptStage]string
