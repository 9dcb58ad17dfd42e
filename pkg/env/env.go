package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

const _PROD = "prod"

const (
	ENV_NAME       = "MTYPES_ENV"
	ALIGNED_NAME   = "MTYPES_ALIGNED"
	FORMAT_NAME    = "MTYPES_FORMAT"
	PRECISION_NAME = "MTYPES_PRECISION"
)

var env string

// Setup loads .env.<MTYPES_ENV> and then .env from the nearest directory at or above the working
// directory that has a .env file. Variables that are already set are never overridden. Having no
// .env at all is fine, the process environment is used as is.
func Setup() {
	log := logging.GetLog("env")

	env = os.Getenv(ENV_NAME) // empty means prod

	wd, _ := os.Getwd()
	log.Debug().Msgf("env %q, searching for .env from %s", env, wd)

	// tests run with the working dir lower than the root
	dir, found := findUp(wd, ".env")
	if !found {
		log.Debug().Msg("no .env file found, using the process environment")
	} else {
		if len(env) > 0 {
			f := filepath.Join(dir, ".env."+env)
			if err := godotenv.Load(f); err != nil {
				log.Warn().Err(err).Msgf("skipping %s", f)
			} else {
				log.Info().Msgf("loaded %s", f)
			}
		}
		f := filepath.Join(dir, ".env")
		if err := godotenv.Load(f); err != nil {
			log.Warn().Err(err).Msgf("skipping %s", f)
		} else {
			log.Info().Msgf("loaded (added) %s", f)
		}
	}

	if len(env) == 0 {
		env = _PROD
	}
}

func findUp(dir, name string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func Getenv() string {
	return env
}

func GetenvIsNotProd() bool {
	return !GetenvIsProd()
}

func GetenvIsProd() bool {
	return env == _PROD
}

// FormatOptions turns MTYPES_ALIGNED, MTYPES_FORMAT and MTYPES_PRECISION into formatter options.
// Unset variables contribute nothing, so the library defaults apply.
func FormatOptions() ([]mtypes.Option, error) {
	var opts []mtypes.Option

	if s, ok := os.LookupEnv(ALIGNED_NAME); ok && s != "" {
		aligned, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a boolean", mtypes.ErrInvalidArgument, ALIGNED_NAME, s)
		}
		opts = append(opts, mtypes.Aligned(aligned))
	}

	if s, ok := os.LookupEnv(FORMAT_NAME); ok && s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) {
			return nil, fmt.Errorf("%w: %s=%q must be a single character", mtypes.ErrInvalidArgument, FORMAT_NAME, s)
		}
		opts = append(opts, mtypes.Notation(r))
	}

	if s, ok := os.LookupEnv(PRECISION_NAME); ok && s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not an integer", mtypes.ErrInvalidArgument, PRECISION_NAME, s)
		}
		if err := mtypes.ValidatePrecision(p); err != nil {
			return nil, err
		}
		opts = append(opts, mtypes.Precision(p))
	}

	return opts, nil
}
