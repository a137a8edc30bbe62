package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jesseduffield/lazysdes/pkg/avalanche"
	"github.com/jesseduffield/lazysdes/pkg/commands"
	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/i18n"
	"github.com/jesseduffield/lazysdes/pkg/log"
	"github.com/jesseduffield/lazysdes/pkg/presentation"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/utils"
	"github.com/jesseduffield/lazysdes/pkg/verify"
	"github.com/sirupsen/logrus"
	"github.com/spkg/bom"
)

// App struct
type App struct {
	closers []io.Closer

	Config    *config.AppConfig
	Log       *logrus.Entry
	OSCommand *commands.OSCommand
	Tr        *i18n.TranslationSet
	Out       io.Writer
}

// CryptOptions are the arguments to Encrypt and Decrypt.
type CryptOptions struct {
	// Key is the master key as a bit string. Ignored when RandomKey is set
	Key string

	// RandomKey generates a fresh key instead of parsing one
	RandomKey bool

	// Block is the block to encrypt or decrypt as a bit string
	Block string

	// File is an optional file of newline separated blocks to process instead
	// of a single block argument. Each line is one independent block
	File string

	// Trace renders every intermediate value instead of just the result
	Trace bool
}

// VerifyOptions are the arguments to Verify.
type VerifyOptions struct {
	// File is an optional yaml file of test vectors to check instead of the
	// builtin ones
	File string

	// Workers overrides the configured worker count when positive
	Workers int
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers: []io.Closer{},
		Config:  config,
		Out:     os.Stdout,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Gui.Language)
	if err != nil {
		return app, err
	}
	app.OSCommand = commands.NewOSCommand(app.Log, config)

	return app, nil
}

func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

// Encrypt encrypts a single block and prints the ciphertext
func (app *App) Encrypt(options CryptOptions) error {
	return app.crypt(options, false)
}

// Decrypt decrypts a single block and prints the plaintext
func (app *App) Decrypt(options CryptOptions) error {
	return app.crypt(options, true)
}

func (app *App) crypt(options CryptOptions, decrypting bool) error {
	key, err := app.resolveKey(options)
	if err != nil {
		return err
	}

	cipher, err := sdes.NewCipher(key)
	if err != nil {
		return err
	}

	if options.File != "" {
		return app.cryptFile(cipher, options, decrypting)
	}

	block, err := sdes.ParseBits(options.Block)
	if err != nil {
		return err
	}

	return app.cryptBlock(cipher, block, options.Trace, decrypting)
}

// cryptFile processes a file of bit strings, one block per line. Blank lines
// are skipped and each block is handled on its own: no chaining between them
func (app *App) cryptFile(cipher *sdes.Cipher, options CryptOptions, decrypting bool) error {
	exists, err := app.OSCommand.FileExists(options.File)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("expected a file at %s", options.File)
	}

	content, err := os.ReadFile(options.File)
	if err != nil {
		return err
	}

	printed := 0
	for i, line := range utils.SplitLines(string(bom.Clean(content))) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		block, err := sdes.ParseBits(line)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", options.File, i+1, err)
		}

		if options.Trace && printed > 0 {
			fmt.Fprintln(app.Out)
		}
		if err := app.cryptBlock(cipher, block, options.Trace, decrypting); err != nil {
			return fmt.Errorf("%s line %d: %w", options.File, i+1, err)
		}
		printed++
	}

	return nil
}

func (app *App) cryptBlock(cipher *sdes.Cipher, block sdes.Bits, traced bool, decrypting bool) error {
	if traced {
		var trace *sdes.Trace
		var err error
		if decrypting {
			_, trace, err = cipher.DecryptBlockTrace(block)
		} else {
			_, trace, err = cipher.EncryptBlockTrace(block)
		}
		if err != nil {
			return err
		}

		rendered, err := presentation.RenderTrace(trace, app.Tr, app.Config.UserConfig)
		if err != nil {
			return err
		}
		fmt.Fprintln(app.Out, rendered)

		return nil
	}

	var result sdes.Bits
	var err error
	if decrypting {
		result, err = cipher.DecryptBlock(block)
	} else {
		result, err = cipher.EncryptBlock(block)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, result.String())

	return nil
}

// resolveKey parses the key argument, or generates one when asked to
func (app *App) resolveKey(options CryptOptions) (sdes.Bits, error) {
	if !options.RandomKey {
		return sdes.ParseBits(options.Key)
	}

	key, err := sdes.GenerateKey(nil)
	if err != nil {
		return nil, err
	}

	line := utils.ResolvePlaceholderString(app.Tr.GeneratedKeyLine, map[string]string{
		"key": key.String(),
	})
	fmt.Fprintln(app.Out, line)

	return key, nil
}

// Schedule prints the derivation of both round subkeys
func (app *App) Schedule(keyArg string) error {
	key, err := sdes.ParseBits(keyArg)
	if err != nil {
		return err
	}

	schedule, err := sdes.NewKeySchedule(key)
	if err != nil {
		return err
	}

	rendered, err := presentation.RenderSchedule(key, schedule, app.Tr, app.Config.UserConfig)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, rendered)

	return nil
}

// Avalanche prints how the ciphertext reacts to single bit flips of the
// plaintext and of the key
func (app *App) Avalanche(keyArg string, blockArg string) error {
	key, err := sdes.ParseBits(keyArg)
	if err != nil {
		return err
	}

	block, err := sdes.ParseBits(blockArg)
	if err != nil {
		return err
	}

	analysis, err := avalanche.Analyze(key, block)
	if err != nil {
		return err
	}

	rendered, err := presentation.RenderAnalysis(analysis, app.Tr, app.Config.UserConfig)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, rendered)

	return nil
}

// Verify checks the reference vectors and then sweeps the whole keyspace.
// A failed check comes back as an error with the VerificationFailed code so
// the caller can skip the stack trace.
func (app *App) Verify(ctx context.Context, options VerifyOptions) error {
	vectors := verify.BuiltinVectors()
	if options.File != "" {
		if app.OSCommand.FileType(options.File) != "file" {
			return fmt.Errorf("expected a file at %s", options.File)
		}

		loaded, err := verify.LoadVectorFile(options.File)
		if err != nil {
			return err
		}
		vectors = loaded
	}

	vectorFailures, err := verify.CheckVectors(vectors)
	if err != nil {
		return err
	}

	rendered, err := presentation.RenderVectorCheck(len(vectors), vectorFailures, app.Tr, app.Config.UserConfig)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, rendered)

	if len(vectorFailures) > 0 {
		return commands.VerificationFailedError(app.failureLine(len(vectorFailures)))
	}

	workers := options.Workers
	if workers <= 0 {
		workers = app.Config.UserConfig.Verify.Workers
	}

	verifier := verify.NewVerifier(app.Log)
	result, err := verifier.Run(ctx, verify.Options{
		Workers:          workers,
		ProgressInterval: app.Config.UserConfig.Verify.ProgressInterval,
		OnProgress: func(progress verify.Progress) {
			fmt.Fprintln(app.Out, presentation.RenderProgress(progress, app.Tr))
		},
	})
	if err != nil {
		return err
	}

	rendered, err = presentation.RenderVerifyResult(result, app.Tr, app.Config.UserConfig)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, rendered)

	if !result.Ok() {
		return commands.VerificationFailedError(app.failureLine(len(result.Failures)))
	}

	return nil
}

func (app *App) failureLine(failures int) string {
	return utils.ResolvePlaceholderString(app.Tr.VerifyFailureLine, map[string]string{
		"failures": strconv.Itoa(failures),
	})
}

// ConfigOpen opens the config file with the configured open command
func (app *App) ConfigOpen() error {
	return app.OSCommand.OpenFile(app.Config.ConfigFilename())
}

// ConfigEdit opens the config file in the user's editor and waits for it
func (app *App) ConfigEdit() error {
	cmd, err := app.OSCommand.EditFile(app.Config.ConfigFilename())
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Docs opens the documentation in the browser
func (app *App) Docs() error {
	return app.OSCommand.OpenLink("https://github.com/jesseduffield/lazysdes/tree/master/docs")
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "invalid key size",
			newError:      app.Tr.InvalidKeyLengthError,
		},
		{
			originalError: "invalid block size",
			newError:      app.Tr.InvalidBlockLengthError,
		},
		{
			originalError: "is not 0 or 1",
			newError:      app.Tr.InvalidBitError,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
