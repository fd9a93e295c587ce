package handler

import (
	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
)

// Prompt is shown before every command line.
const Prompt = "recruittrack> "

// NewReadline opens a readline instance that completes the given command
// words and keeps history in historyFile. An empty historyFile keeps history
// in memory only. The caller must Close the instance.
func NewReadline(historyFile string, words []string) (*readline.Instance, error) {
	items := make([]readline.PrefixCompleterInterface, len(words))
	for i, w := range words {
		items[i] = readline.PcItem(w)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            Prompt,
		HistoryFile:       historyFile,
		AutoComplete:      readline.NewPrefixCompleter(items...),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "handler.NewReadline")
	}
	return rl, nil
}
