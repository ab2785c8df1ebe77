// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Custom struct {
	N int
}

func (c *Custom) UnmarshalText(b []byte) error {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	c.N = n
	return nil
}

var errUnmarshal = errors.New("failed to unmarshal")

type UnmarshalTextFailure struct{}

func (x *UnmarshalTextFailure) UnmarshalText(b []byte) error {
	return errUnmarshal
}

func storeWith(m Map) *Store {
	s := New(LogHandler(discard()))
	s.doc = m
	return s
}

func TestStore_Unmarshal(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a nil result is provided", func(t *testing.T) {
			s := storeWith(Map{"hello": "world"})

			var v any
			err := s.Unmarshal(v)
			if !assert.Error(t, err) {
				return
			}
		})

		t.Run("if the encoding.TextUnmarshaler fails to UnmarshalText", func(t *testing.T) {
			s := storeWith(Map{"value": "10"})

			var cfg struct {
				Value UnmarshalTextFailure `config:"value"`
			}
			err := s.Unmarshal(&cfg)
			if !assert.ErrorContains(t, err, errUnmarshal.Error()) {
				return
			}
		})

		t.Run("if a duration string is invalid", func(t *testing.T) {
			s := storeWith(Map{"timeout": "soon"})

			var cfg struct {
				Timeout time.Duration `config:"timeout"`
			}
			err := s.Unmarshal(&cfg)
			if !assert.Error(t, err) {
				return
			}
		})
	})

	t.Run("will decode nested sections", func(t *testing.T) {
		s := storeWith(Map{
			"app_name": "BRRCS",
			"gui": map[string]any{
				"width": float64(1280),
				"dark":  true,
			},
		})

		var cfg struct {
			AppName string `config:"app_name"`
			GUI     struct {
				Width int  `config:"width"`
				Dark  bool `config:"dark"`
			} `config:"gui"`
		}
		err := s.Unmarshal(&cfg)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "BRRCS", cfg.AppName) {
			return
		}
		if !assert.Equal(t, 1280, cfg.GUI.Width) {
			return
		}
		if !assert.True(t, cfg.GUI.Dark) {
			return
		}
	})

	t.Run("will unmarshal time.Duration", func(t *testing.T) {
		testCases := []struct {
			Name  string
			Value any
		}{
			{Name: "if the value is provided in string format", Value: "10s"},
			{Name: "if the value is provided in int format", Value: int(10 * time.Second)},
			{Name: "if the value is provided as a JSON number", Value: float64(10 * time.Second)},
		}

		for _, testCase := range testCases {
			t.Run(testCase.Name, func(t *testing.T) {
				s := storeWith(Map{"duration": testCase.Value})

				var cfg struct {
					Duration time.Duration `config:"duration"`
				}
				err := s.Unmarshal(&cfg)
				if !assert.Nil(t, err) {
					return
				}
				if !assert.Equal(t, 10*time.Second, cfg.Duration) {
					return
				}
			})
		}
	})

	t.Run("will unmarshal encoding.TextUnmarshaler", func(t *testing.T) {
		t.Run("if the value is a string", func(t *testing.T) {
			s := storeWith(Map{"value": "10", "level": "warn"})

			var cfg struct {
				Value Custom     `config:"value"`
				Level slog.Level `config:"level"`
			}
			err := s.Unmarshal(&cfg)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 10, cfg.Value.N) {
				return
			}
			if !assert.Equal(t, slog.LevelWarn, cfg.Level) {
				return
			}
		})
	})
}

func TestStore_UnmarshalKey(t *testing.T) {
	t.Run("will decode the sub-tree", func(t *testing.T) {
		s := storeWith(Map{
			"database": map[string]any{"path": "data/residents.xlsx"},
		})

		var db struct {
			Path string `config:"path"`
		}
		err := s.UnmarshalKey("database", &db)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "data/residents.xlsx", db.Path) {
			return
		}
	})

	t.Run("will leave the result untouched", func(t *testing.T) {
		t.Run("if the path is absent", func(t *testing.T) {
			s := storeWith(Map{})

			db := struct {
				Path string `config:"path"`
			}{Path: "default.xlsx"}
			err := s.UnmarshalKey("database", &db)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "default.xlsx", db.Path) {
				return
			}
		})
	})
}
