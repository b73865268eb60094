package console

import (
	survey "github.com/AlecAivazis/survey/v2"
)

// PromptMissing asks for whichever of the query and the file path is absent
// from args (positional arguments, without the program name) and returns
// the completed list. An empty answer is kept as is.
func PromptMissing(args []string, opts ...survey.AskOpt) ([]string, error) {
	out := append([]string{}, args...)
	for _, q := range missingQuestions(len(out)) {
		var answer string
		if err := survey.AskOne(&survey.Input{Message: q.message, Help: q.help}, &answer, opts...); err != nil {
			return nil, err
		}
		out = append(out, answer)
	}
	return out, nil
}

type question struct {
	message string
	help    string
}

func missingQuestions(have int) []question {
	all := []question{
		{message: "Search for:", help: "text to look for in each line"},
		{message: "In file:", help: "path of the file to search"},
	}
	if have >= len(all) {
		return nil
	}
	return all[have:]
}
