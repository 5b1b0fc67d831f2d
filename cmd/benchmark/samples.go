package main

// Sample represents a benchmark text sample.
type Sample struct {
	Name string
	Text string
}

// Samples are short English passages of increasing length. The model caps
// output at 128 new tokens, so the longest sample stays near that size.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "Can you review the pull request when you have time?",
	},
	{
		Name: "short",
		Text: "The deployment went smoothly yesterday and all services are running without errors.",
	},
	{
		Name: "medium",
		Text: "After looking through the logs, the login problem seems to happen when a session expires while someone is still filling in a long form, so their input is lost.",
	},
	{
		Name: "long",
		Text: "We should hold pending requests while the access token is being refreshed and replay them once the new token arrives. This pattern is common in OAuth client libraries and would stop users from losing their work. A first draft could be ready by Thursday if the team agrees with the approach.",
	},
}

// QualitySamples are phrases with a clear meaning used to eyeball output
// quality in --quality mode.
var QualitySamples = []Sample{
	{Name: "question", Text: "Can you recommend some upscale restaurants in New York?"},
	{Name: "statement", Text: "What are the famous places we should not miss in Russia?"},
	{Name: "idiom", Text: "It is raining cats and dogs, so the match has been postponed."},
	{Name: "instruction", Text: "Please restart the server after applying the configuration change."},
	{Name: "whitespace", Text: "   leading and trailing spaces are trimmed before paraphrasing   "},
}
