package dto

type ActionOutput struct {
	ID    string
	Title string
}

type TransformInput struct {
	ActionID string
	Text     string
}

type TransformOutput struct {
	ActionID string
	Provider string
	Text     string
}

type ProviderCheckOutput struct {
	Target string
	OK     bool
	Detail string
}
