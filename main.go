package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/lazysdes/pkg/app"
	"github.com/jesseduffield/lazysdes/pkg/commands"
	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/yaml"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("lazysdes")
	flaggy.SetDescription("The lazier way to study S-DES")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/jesseduffield/lazysdes"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "a boolean")
	flaggy.SetVersion(info)

	var key, block, blockFile, vectorFile string
	var randomKey, trace bool
	var workers int

	encryptCmd := flaggy.NewSubcommand("encrypt")
	encryptCmd.Description = "Encrypt an 8 bit block under a 10 bit key"
	encryptCmd.String(&key, "k", "key", "10 bit key, e.g. 1010000010")
	encryptCmd.Bool(&randomKey, "r", "random-key", "Generate a random key instead of passing one")
	encryptCmd.Bool(&trace, "t", "trace", "Print every intermediate value")
	encryptCmd.String(&blockFile, "f", "file", "File of blocks to encrypt, one per line")
	encryptCmd.AddPositionalValue(&block, "block", 1, false, "8 bit block, e.g. 11010111")
	flaggy.AttachSubcommand(encryptCmd, 1)

	decryptCmd := flaggy.NewSubcommand("decrypt")
	decryptCmd.Description = "Decrypt an 8 bit block under a 10 bit key"
	decryptCmd.String(&key, "k", "key", "10 bit key, e.g. 1010000010")
	decryptCmd.Bool(&trace, "t", "trace", "Print every intermediate value")
	decryptCmd.String(&blockFile, "f", "file", "File of blocks to decrypt, one per line")
	decryptCmd.AddPositionalValue(&block, "block", 1, false, "8 bit block, e.g. 10101000")
	flaggy.AttachSubcommand(decryptCmd, 1)

	scheduleCmd := flaggy.NewSubcommand("schedule")
	scheduleCmd.Description = "Show how the two round subkeys fall out of the key"
	scheduleCmd.AddPositionalValue(&key, "key", 1, true, "10 bit key")
	flaggy.AttachSubcommand(scheduleCmd, 1)

	avalancheCmd := flaggy.NewSubcommand("avalanche")
	avalancheCmd.Description = "Show how single bit flips ripple through the ciphertext"
	avalancheCmd.AddPositionalValue(&key, "key", 1, true, "10 bit key")
	avalancheCmd.AddPositionalValue(&block, "block", 2, true, "8 bit block")
	flaggy.AttachSubcommand(avalancheCmd, 1)

	verifyCmd := flaggy.NewSubcommand("verify")
	verifyCmd.Description = "Check reference vectors, then sweep every key against every block"
	verifyCmd.String(&vectorFile, "f", "file", "yaml file of test vectors to check instead of the builtin ones")
	verifyCmd.Int(&workers, "w", "workers", "Number of worker goroutines, 0 means one per CPU")
	flaggy.AttachSubcommand(verifyCmd, 1)

	configCmd := flaggy.NewSubcommand("config")
	configCmd.Description = "Open or edit the config file"
	configOpenCmd := flaggy.NewSubcommand("open")
	configOpenCmd.Description = "Open the config file"
	configEditCmd := flaggy.NewSubcommand("edit")
	configEditCmd.Description = "Edit the config file in $VISUAL or $EDITOR"
	configCmd.AttachSubcommand(configOpenCmd, 1)
	configCmd.AttachSubcommand(configEditCmd, 1)
	flaggy.AttachSubcommand(configCmd, 1)

	docsCmd := flaggy.NewSubcommand("docs")
	docsCmd.Description = "Open the documentation in the browser"
	flaggy.AttachSubcommand(docsCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig, err := config.NewAppConfig("lazysdes", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	cryptOptions := app.CryptOptions{
		Key:       key,
		RandomKey: randomKey,
		Block:     block,
		File:      blockFile,
		Trace:     trace,
	}
	verifyOptions := app.VerifyOptions{
		File:    vectorFile,
		Workers: workers,
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		switch {
		case encryptCmd.Used:
			err = app.Encrypt(cryptOptions)
		case decryptCmd.Used:
			err = app.Decrypt(cryptOptions)
		case scheduleCmd.Used:
			err = app.Schedule(key)
		case avalancheCmd.Used:
			err = app.Avalanche(key, block)
		case verifyCmd.Used:
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			err = app.Verify(ctx, verifyOptions)
			stop()
		case configEditCmd.Used:
			err = app.ConfigEdit()
		case configCmd.Used:
			err = app.ConfigOpen()
		case docsCmd.Used:
			err = app.Docs()
		default:
			flaggy.ShowHelpAndExit("")
		}
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Fatal(errMessage)
		}

		if commands.HasErrorCode(err, commands.VerificationFailed) {
			log.Fatal(err.Error())
		}

		if err == context.Canceled {
			log.Fatal("interrupted")
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}
