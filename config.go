package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"

	"bendor/internal/export"
)

type Config struct {
	SaveDirectory string
	StartMenu     bool
	Confirmations bool
	MaxDimension  int
	Frames        int
	GIF           export.GIFOptions
	LogFile       string
	LogLevel      string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		StartMenu:     true,
		Confirmations: true,
		MaxDimension:  480,
		Frames:        12,
		GIF:           export.DefaultGIFOptions(),
		LogLevel:      "info",
	}
}

func loadConfig() *Config {
	configPath, err := homedir.Expand("~/.bendorrc")
	if err != nil {
		return defaultConfig()
	}
	file, err := os.Open(configPath)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()
	return parseConfig(file)
}

// parseConfig reads key = value lines. Unknown keys and bad numbers are
// ignored so a broken rc file never stops the program.
func parseConfig(r io.Reader) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = absPath(value)
		case "startmenu", "start_menu":
			config.StartMenu = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "maxdimension", "max_dimension", "maxdim":
			setInt(&config.MaxDimension, value, 1, 4096)
		case "frames":
			setInt(&config.Frames, value, 1, 120)
		case "framerate", "fps":
			setInt(&config.GIF.Framerate, value, 5, 30)
		case "colorrange", "color_range", "colors":
			setInt(&config.GIF.ColorRange, value, 80, 256)
		case "quality", "compressionquality", "compression_quality":
			setInt(&config.GIF.CompressionQuality, value, 0, 100)
		case "gifwidth", "gif_width":
			setInt(&config.GIF.MaxWidth, value, 0, 4096)
		case "logfile", "log_file":
			config.LogFile = absPath(value)
		case "loglevel", "log_level":
			config.LogLevel = strings.ToLower(value)
		}
	}

	return config
}

func setInt(dst *int, value string, lo, hi int) {
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return
	}
	*dst = n
}

func absPath(value string) string {
	if expanded, err := homedir.Expand(value); err == nil {
		value = expanded
	}
	if !filepath.IsAbs(value) {
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
	}
	return value
}

// SaveDir returns the export directory. Exports create it on first write.
func (c *Config) SaveDir() string {
	if c.SaveDirectory == "" {
		return "."
	}
	return c.SaveDirectory
}
