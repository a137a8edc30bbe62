package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
	"github.com/spkg/bom"
)

// AppConfig contains the base configuration fields required for lazysdes.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"lazysdes"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `lazysdes --config` and you can open the config file with `lazysdes config open`, or use `lazysdes config edit` to edit it in your chosen editor. Be careful: if for example you set a `stats:` yaml key but then give it no child values, it will scrap all of the default graphs and the avalanche report will render tables only
type UserConfig struct {
	// Gui is for configuring visual things like colors and the language of the reports
	Gui GuiConfig `yaml:"gui,omitempty"`

	// OS determines what defaults are set for opening files and links
	OS OSConfig `yaml:"oS,omitempty"`

	// Stats determines which avalanche statistics get graphed and how
	Stats StatsConfig `yaml:"stats,omitempty"`

	// Verify tunes the exhaustive sweep run by `lazysdes verify`
	Verify VerifyConfig `yaml:"verify,omitempty"`
}

// ThemeConfig is for setting the colors of titles and some text.
type ThemeConfig struct {
	TitleColor     []string `yaml:"titleColor,omitempty"`
	HighlightColor []string `yaml:"highlightColor,omitempty"`
	InfoTextColor  []string `yaml:"infoTextColor,omitempty"`
}

// GuiConfig is for configuring visual things like colors and language
type GuiConfig struct {
	// Language determines which language the reports are rendered in. "auto" picks up your locale, otherwise set one of the supported codes, e.g. "en" or "nl"
	Language string `yaml:"language,omitempty"`

	// Theme determines what colors the report titles, highlighted bits and info lines get. I always set highlightColor to red because a flipped bit should shout at you, but any combination of color attributes works
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// ShowIndexes determines whether the schedule and trace tables print a ruler of 1-based bit positions above each bit row, which helps when cross-checking a worked example by hand
	ShowIndexes bool `yaml:"showIndexes,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// OpenCommand is the command for opening a file
	OpenCommand string `yaml:"openCommand,omitempty"`

	// OpenCommand is the command for opening a link
	OpenLinkCommand string `yaml:"openLinkCommand,omitempty"`
}

// Series names accepted by GraphConfig.Series.
const (
	SeriesPlaintext = "plaintext"
	SeriesKey       = "key"
)

// GraphConfig specifies how to make a graph of avalanche results
type GraphConfig struct {
	// Min sets the minimum value that you want to display. If you want to set this, you should also set MinType to "static". The reason for this is that if Min == 0, it's not clear if it has not been set (given that the zero-value of an int is 0) or if it's intentionally been set to 0.
	Min float64 `yaml:"min,omitempty"`

	// Max sets the maximum value that you want to display. If you want to set this, you should also set MaxType to "static". The reason for this is that if Max == 0, it's not clear if it has not been set (given that the zero-value of an int is 0) or if it's intentionally been set to 0.
	Max float64 `yaml:"max,omitempty"`

	// Height sets the height of the graph in ascii characters
	Height int `yaml:"height,omitempty"`

	// Width sets the width of the graph in ascii characters. When zero the graph is sized to the data, which for a flip series means one column per flipped position
	Width int `yaml:"width,omitempty"`

	// Caption sets the caption of the graph. If you want to show how many ciphertext bits changed you could set this to "Bits changed"
	Caption string `yaml:"caption,omitempty"`

	// This is the path to the stat that you want to display. It is based on the FlipResult struct in the avalanche package, so feel free to look there to see all the options available. E.g. "Distance" gives you the hamming distance between the base and flipped ciphertexts
	StatPath string `yaml:"statPath,omitempty"`

	// Series picks which flip series feeds the graph: "plaintext" flips each plaintext bit in turn, "key" flips each key bit
	Series string `yaml:"series,omitempty"`

	// This determines the color of the graph. This can be any color attribute, e.g. 'blue', 'green'
	Color string `yaml:"color,omitempty"`

	// MinType and MaxType are each one of "", "static". blank means the min/max of the data set will be used. "static" means the min/max specified will be used
	MinType string `yaml:"minType,omitempty"`

	// MaxType is just like MinType but for the max value
	MaxType string `yaml:"maxType,omitempty"`
}

// StatsConfig contains the stuff relating to avalanche stats and graphs
type StatsConfig struct {
	// Graphs contains the configuration for the graphs we render under the avalanche tables
	Graphs []GraphConfig
}

// VerifyConfig tunes the exhaustive sweep across every key and block
type VerifyConfig struct {
	// Workers sets how many goroutines share the keyspace. Zero means one worker per CPU
	Workers int `yaml:"workers,omitempty"`

	// ProgressInterval sets the least time between progress reports while the sweep runs
	ProgressInterval time.Duration `yaml:"progressInterval,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Gui: GuiConfig{
			Language: "auto",
			Theme: ThemeConfig{
				TitleColor:     []string{"green", "bold"},
				HighlightColor: []string{"red", "bold"},
				InfoTextColor:  []string{"blue"},
			},
			ShowIndexes: false,
		},
		OS: GetPlatformDefaultConfig(),
		Stats: StatsConfig{
			Graphs: []GraphConfig{
				{
					Caption:  "Plaintext avalanche (bits changed)",
					StatPath: "Distance",
					Series:   SeriesPlaintext,
					Color:    "blue",
				},
				{
					Caption:  "Key avalanche (bits changed)",
					StatPath: "Distance",
					Series:   SeriesKey,
					Color:    "green",
				},
			},
		},
		Verify: VerifyConfig{
			Workers:          0,
			ProgressInterval: time.Millisecond * 200,
		},
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func configDirForVendor(vendor string, projectName string) string {
	envConfigDir := os.Getenv("CONFIG_DIR")
	if envConfigDir != "" {
		return envConfigDir
	}
	configDirs := xdg.New(vendor, projectName)
	return configDirs.ConfigHome()
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := configDirForVendor("jesseduffield", projectName)
	return folder, os.MkdirAll(folder, 0o755)
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(bom.Clean(content), base); err != nil {
		return nil, err
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(c.ConfigFilename(), out, 0666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
