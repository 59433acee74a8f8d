package config

import (
	"bytes"
	"os"

	"github.com/scriptor-ai/scriptor/pkg/recognizer"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Origins []string

	recognizers map[string]*recognizer.Client
}

func New() *Config {
	return &Config{
		Address: ":8080",

		Origins: defaultOrigins,
	}
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := New()

	if len(file.Origins) > 0 {
		c.Origins = file.Origins
	}

	if err := c.registerRecognizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type configFile struct {
	Origins []string `yaml:"origins"`

	Recognizers yaml.Node `yaml:"recognizers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
