package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

// Globals is shared with every command.
type Globals struct {
	Logger *zap.Logger
}

// CLI is the command line of the folio binary.
type CLI struct {
	LogLevel string `name:"log-level" env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (${enum})."`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the portfolio site."`
	Setup   SetupCmd   `cmd:"" help:"Create or update the content model in the Contentful space."`
	Check   CheckCmd   `cmd:"" help:"Verify Contentful credentials and list the space's content types."`
	Version VersionCmd `cmd:"" help:"Print the folio version."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("A portfolio site backed by Contentful and Cloudinary."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx.FatalIfErrorf(ctx.Run(&Globals{Logger: logger}))
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (VersionCmd) Run() error {
	fmt.Printf("folio %s\n", version)
	return nil
}
