package smartcd

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/smartcd/pkg/cobrax/topics"
	"github.com/arthur-debert/smartcd/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// initTopics installs the topic-aware help command. Markdown is rendered
// with glamour only when stdout is a terminal.
func initTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if style.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	if _, err := topics.InitializeWithOptions(rootCmd, source, topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   renderer,
	}); err != nil {
		log.Debug().Err(err).Msg("Failed to initialize help topics")
	}
}
