package cmd

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/skillmatch/internal/dataset"
	"github.com/spigell/skillmatch/internal/sorting"
)

const (
	app       = "skillmatch"
	envPrefix = "SKILLMATCH"
)

type Config struct {
	Data    DataConfig   `mapstructure:"data"`
	Storage string       `mapstructure:"storage" validate:"oneof=array list"`
	Sort    SortConfig   `mapstructure:"sort"`
	Match   MatchConfig  `mapstructure:"match"`
	Load    LoadConfig   `mapstructure:"load"`
	Filter  FilterConfig `mapstructure:"filter"`
}

type DataConfig struct {
	Jobs    string `mapstructure:"jobs" validate:"required"`
	Resumes string `mapstructure:"resumes" validate:"required"`
}

type SortConfig struct {
	Algorithm sorting.Algorithm `mapstructure:"algorithm"`
}

type MatchConfig struct {
	TopN         int      `mapstructure:"top-n" validate:"min=1"`
	Keywords     []string `mapstructure:"keywords"`
	KeywordsFile string   `mapstructure:"keywords-file"`
}

type LoadConfig struct {
	ProgressEvery int `mapstructure:"progress-every"`
}

type FilterConfig struct {
	TitleKeyword string   `mapstructure:"title-keyword"`
	Skills       []string `mapstructure:"skills"`
	Categories   []string `mapstructure:"categories"`
	MinPriority  int      `mapstructure:"min-priority" validate:"min=0,max=3"`
	MinScore     float64  `mapstructure:"min-score" validate:"min=0"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillmatch loads job and resume corpora and ranks jobs against resumes by skill and keyword overlap",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("jobs", "", "path to the job descriptions csv")
	rootCmd.PersistentFlags().String("resumes", "", "path to the resumes csv")
	rootCmd.PersistentFlags().String("storage", "", "container to load records into: array or list")
	rootCmd.PersistentFlags().String("algorithm", "", "sort algorithm: bubble, quick or merge")
	rootCmd.PersistentFlags().String("keywords-file", "", "file with keywords for the keyword overlap score")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("data.jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	viper.BindPFlag("data.resumes", rootCmd.PersistentFlags().Lookup("resumes"))
	viper.BindPFlag("storage", rootCmd.PersistentFlags().Lookup("storage"))
	viper.BindPFlag("sort.algorithm", rootCmd.PersistentFlags().Lookup("algorithm"))
	viper.BindPFlag("match.keywords-file", rootCmd.PersistentFlags().Lookup("keywords-file"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.jobs", "csv/job_description.csv")
	v.SetDefault("data.resumes", "csv/resume.csv")
	v.SetDefault("storage", dataset.StorageArray)
	v.SetDefault("sort.algorithm", string(sorting.AlgorithmMerge))
	v.SetDefault("match.top-n", 5)
	v.SetDefault("match.keywords", []string{})
	v.SetDefault("match.keywords-file", "")
	v.SetDefault("load.progress-every", dataset.DefaultProgressEvery)
	v.SetDefault("filter.title-keyword", "")
	v.SetDefault("filter.skills", []string{})
	v.SetDefault("filter.categories", []string{})
	v.SetDefault("filter.min-priority", 0)
	v.SetDefault("filter.min-score", 0.0)
}

func initConfig() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// The config file is optional unless given explicitly.
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

// decodeConfig decodes every setting of v into a Config and validates it.
func decodeConfig(v *viper.Viper) (*Config, error) {
	var config Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			trimSliceHook,
			algorithmHook,
		),
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	config.Storage = strings.ToLower(strings.TrimSpace(config.Storage))

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &config, nil
}

// algorithmHook parses sort algorithm names.
func algorithmHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(sorting.Algorithm("")) {
		return data, nil
	}
	return sorting.ParseAlgorithm(reflect.ValueOf(data).String())
}

// trimSliceHook trims the items of string slices and drops empty ones.
func trimSliceHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf([]string{}) {
		return data, nil
	}

	items, ok := data.([]string)
	if !ok {
		return data, nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}
