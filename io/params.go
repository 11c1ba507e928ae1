package io

import (
	"bufio"
	"fmt"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Parameters are the key/value pairs of a parameter file. Keys are not
// interpreted when the file is read.
type Parameters map[string]string

// ReadParameterFile reads the parameter file fname.
func ReadParameterFile(fname string) (Parameters, error) {
	f, err := os.Open(fname)
	if err != nil { return nil, err }
	defer f.Close()
	return ReadParameters(f)
}

// ReadParameters reads whitespace-separated "key value" lines from r. Tokens
// after the value are ignored and later keys overwrite earlier ones. Lines
// with fewer than two tokens are logged and skipped: only a failure to read
// r is an error.
func ReadParameters(r goio.Reader) (Parameters, error) {
	params := Parameters{}
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		words := strings.Fields(text)
		switch {
		case len(words) >= 2:
			params[words[0]] = words[1]
		case len(words) == 0:
			logrus.Debugf("Skipping blank line %d of parameter input.", line)
		default:
			logrus.Warnf(
				"Failed to read line %d of parameter input: '%s'.", line, text,
			)
		}
	}

	if err := scanner.Err(); err != nil { return nil, err }
	return params, nil
}

// String returns the value of key.
func (p Parameters) String(key string) (string, error) {
	val, ok := p[key]
	if !ok {
		return "", fmt.Errorf("Parameter '%s' was not set.", key)
	}
	return val, nil
}

// Float returns the value of key parsed as a float64.
func (p Parameters) Float(key string) (float64, error) {
	val, err := p.String(key)
	if err != nil { return 0, err }
	x, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("Parameter '%s' = '%s' is not a number.", key, val)
	}
	return x, nil
}

// Int returns the value of key parsed as an int.
func (p Parameters) Int(key string) (int, error) {
	val, err := p.String(key)
	if err != nil { return 0, err }
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf(
			"Parameter '%s' = '%s' is not an integer.", key, val,
		)
	}
	return n, nil
}

// Bool returns the value of key parsed by strconv.ParseBool.
func (p Parameters) Bool(key string) (bool, error) {
	val, err := p.String(key)
	if err != nil { return false, err }
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf(
			"Parameter '%s' = '%s' is not a boolean.", key, val,
		)
	}
	return b, nil
}
