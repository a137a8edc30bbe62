package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jesseduffield/lazysdes/pkg/commands"
	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	appConfig, err := config.NewAppConfig("lazysdes", "", "", "", "", false)
	assert.NoError(t, err)

	app, err := NewApp(appConfig)
	assert.NoError(t, err)

	out := &bytes.Buffer{}
	app.Out = out

	return app, out
}

func mustBits(t *testing.T, s string) sdes.Bits {
	bits, err := sdes.ParseBits(s)
	assert.NoError(t, err)
	return bits
}

// TestAppEncrypt is a function.
func TestAppEncrypt(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Encrypt(CryptOptions{Key: "1010000010", Block: "11010111"})
	assert.NoError(t, err)
	assert.EqualValues(t, "10101000\n", out.String())
}

// TestAppDecrypt is a function.
func TestAppDecrypt(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Decrypt(CryptOptions{Key: "1010000010", Block: "10101000"})
	assert.NoError(t, err)
	assert.EqualValues(t, "11010111\n", out.String())
}

// TestAppEncryptTrace is a function.
func TestAppEncryptTrace(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Encrypt(CryptOptions{Key: "1010000010", Block: "11010111", Trace: true})
	assert.NoError(t, err)

	plain := utils.Decolorise(out.String())
	assert.Contains(t, plain, "Encryption trace")
	assert.Contains(t, plain, "IP^-1     10101000")
}

// TestAppDecryptTrace is a function.
func TestAppDecryptTrace(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Decrypt(CryptOptions{Key: "1010000010", Block: "10101000", Trace: true})
	assert.NoError(t, err)

	plain := utils.Decolorise(out.String())
	assert.Contains(t, plain, "Decryption trace")
	assert.Contains(t, plain, "subkeys applied in reverse order")
	assert.Contains(t, plain, "IP^-1     11010111")
}

// TestAppEncryptRandomKey is a function.
func TestAppEncryptRandomKey(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Encrypt(CryptOptions{RandomKey: true, Block: "11010111"})
	assert.NoError(t, err)

	lines := utils.SplitLines(out.String())
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "generated random key: ")

	key := mustBits(t, strings.TrimPrefix(lines[0], "generated random key: "))
	cipher, err := sdes.NewCipher(key)
	assert.NoError(t, err)

	decrypted, err := cipher.DecryptBlock(mustBits(t, lines[1]))
	assert.NoError(t, err)
	assert.EqualValues(t, "11010111", decrypted.String())
}

// TestAppCryptBadInput is a function.
func TestAppCryptBadInput(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Encrypt(CryptOptions{Key: "101", Block: "11010111"})
	assert.EqualError(t, err, "sdes: invalid key size 3")

	err = app.Encrypt(CryptOptions{Key: "1010000010", Block: "11010"})
	assert.EqualError(t, err, "sdes: invalid block size 5")

	err = app.Decrypt(CryptOptions{Key: "1010000010", Block: "1101011x"})
	assert.Error(t, err)
}

// TestAppEncryptFile is a function.
func TestAppEncryptFile(t *testing.T) {
	app, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "blocks.txt")
	assert.NoError(t, os.WriteFile(path, []byte("11010111\n\n01010111\n"), 0o644))

	err := app.Encrypt(CryptOptions{Key: "1010000010", File: path})
	assert.NoError(t, err)
	assert.EqualValues(t, "10101000\n00001010\n", out.String())
}

// TestAppDecryptFile is a function.
func TestAppDecryptFile(t *testing.T) {
	app, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "blocks.txt")
	assert.NoError(t, os.WriteFile(path, []byte("10101000\n00001010\n"), 0o644))

	err := app.Decrypt(CryptOptions{Key: "1010000010", File: path})
	assert.NoError(t, err)
	assert.EqualValues(t, "11010111\n01010111\n", out.String())
}

// TestAppEncryptFileTrace is a function.
func TestAppEncryptFileTrace(t *testing.T) {
	app, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "blocks.txt")
	assert.NoError(t, os.WriteFile(path, []byte("11010111\n01010111\n"), 0o644))

	err := app.Encrypt(CryptOptions{Key: "1010000010", File: path, Trace: true})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, strings.Count(utils.Decolorise(out.String()), "Encryption trace"))
}

// TestAppCryptFileErrors is a function.
func TestAppCryptFileErrors(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Encrypt(CryptOptions{Key: "1010000010", File: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected a file")

	path := filepath.Join(t.TempDir(), "blocks.txt")
	assert.NoError(t, os.WriteFile(path, []byte("11010111\n11010\n"), 0o644))

	err = app.Encrypt(CryptOptions{Key: "1010000010", File: path})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// TestAppSchedule is a function.
func TestAppSchedule(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Schedule("1010000010")
	assert.NoError(t, err)

	plain := utils.Decolorise(out.String())
	assert.Contains(t, plain, "Key schedule")
	assert.Contains(t, plain, "K1 = P8 10100100")
	assert.Contains(t, plain, "K2 = P8 01000011")
}

// TestAppAvalanche is a function.
func TestAppAvalanche(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Avalanche("1010000010", "11010111")
	assert.NoError(t, err)

	plain := utils.Decolorise(out.String())
	assert.Contains(t, plain, "Avalanche analysis")
	assert.Contains(t, plain, "base ciphertext: 10101000")
}

// TestAppVerify is a function.
func TestAppVerify(t *testing.T) {
	app, out := newTestApp(t)

	err := app.Verify(context.Background(), VerifyOptions{Workers: 4})
	assert.NoError(t, err)

	plain := utils.Decolorise(out.String())
	assert.Contains(t, plain, "checked 3 reference vectors")
	assert.Contains(t, plain, "checked 1024 of 1024 keys")
	assert.Contains(t, plain, "verified 262144 key/block pairs")
}

// TestAppVerifyVectorFile is a function.
func TestAppVerifyVectorFile(t *testing.T) {
	app, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "vectors.yml")
	content := "- description: textbook\n  key: \"1010000010\"\n  plaintext: \"11010111\"\n  ciphertext: \"10101000\"\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err := app.Verify(context.Background(), VerifyOptions{File: path, Workers: 4})
	assert.NoError(t, err)
	assert.Contains(t, utils.Decolorise(out.String()), "checked 1 reference vectors")
}

// TestAppVerifyBadVectorFile is a function.
func TestAppVerifyBadVectorFile(t *testing.T) {
	app, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "vectors.yml")
	content := "- key: \"1010000010\"\n  plaintext: \"11010111\"\n  ciphertext: \"00000000\"\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err := app.Verify(context.Background(), VerifyOptions{File: path})
	assert.Error(t, err)
	assert.True(t, commands.HasErrorCode(err, commands.VerificationFailed))
	assert.Contains(t, utils.Decolorise(out.String()), "found 1 failing key/block pairs")
}

// TestAppVerifyExpectsFile is a function.
func TestAppVerifyExpectsFile(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Verify(context.Background(), VerifyOptions{File: t.TempDir()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected a file")
}

// TestAppConfigOpen is a function.
func TestAppConfigOpen(t *testing.T) {
	app, _ := newTestApp(t)

	ran := false
	app.OSCommand.SetCommand(func(name string, arg ...string) *exec.Cmd {
		ran = true
		assert.EqualValues(t, "open", name)
		assert.Contains(t, arg[0], "config.yml")
		return exec.Command("echo")
	})

	assert.NoError(t, app.ConfigOpen())
	assert.True(t, ran)
}

// TestAppConfigEdit is a function.
func TestAppConfigEdit(t *testing.T) {
	app, _ := newTestApp(t)
	t.Setenv("VISUAL", "nano")

	ran := false
	app.OSCommand.SetCommand(func(name string, arg ...string) *exec.Cmd {
		ran = true
		assert.EqualValues(t, "bash", name)
		assert.Contains(t, arg[len(arg)-1], "nano")
		assert.Contains(t, arg[len(arg)-1], "config.yml")
		return exec.Command("echo")
	})

	assert.NoError(t, app.ConfigEdit())
	assert.True(t, ran)
}

// TestAppDocs is a function.
func TestAppDocs(t *testing.T) {
	app, _ := newTestApp(t)

	ran := false
	app.OSCommand.SetCommand(func(name string, arg ...string) *exec.Cmd {
		ran = true
		assert.EqualValues(t, "open", name)
		assert.Contains(t, arg[0], "https://github.com/jesseduffield/lazysdes")
		return exec.Command("echo")
	})

	assert.NoError(t, app.Docs())
	assert.True(t, ran)
}

// TestAppKnownError is a function.
func TestAppKnownError(t *testing.T) {
	app, _ := newTestApp(t)

	message, known := app.KnownError(sdes.KeySizeError(9))
	assert.True(t, known)
	assert.EqualValues(t, app.Tr.InvalidKeyLengthError, message)

	message, known = app.KnownError(sdes.BlockSizeError(7))
	assert.True(t, known)
	assert.EqualValues(t, app.Tr.InvalidBlockLengthError, message)

	message, known = app.KnownError(sdes.BitValueError(3))
	assert.True(t, known)
	assert.EqualValues(t, app.Tr.InvalidBitError, message)

	_, known = app.KnownError(errors.New("something else entirely"))
	assert.False(t, known)
}
