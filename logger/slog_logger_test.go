package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSLogWithOptions(t *testing.T) {
	t.Run("默认选项", func(t *testing.T) {
		log, err := NewSLogWithOptions(nil)
		assert.NoError(t, err)
		assert.NotNil(t, log)

		log.Info("hello", "key", "value")
		log.With("component", "planner").Warn("hello again")
	})

	t.Run("json 格式输出到 stderr", func(t *testing.T) {
		log, err := NewSLogWithOptions(&SLogOptions{
			Level:  "debug",
			Format: "json",
			Target: "stderr",
		})
		assert.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("非法的日志级别", func(t *testing.T) {
		_, err := NewSLogWithOptions(&SLogOptions{Level: "verbose"})
		assert.Error(t, err)
	})

	t.Run("非法的输出格式", func(t *testing.T) {
		_, err := NewSLogWithOptions(&SLogOptions{Format: "xml"})
		assert.Error(t, err)
	})

	t.Run("非法的输出目标", func(t *testing.T) {
		_, err := NewSLogWithOptions(&SLogOptions{Target: "file"})
		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	assert.NotNil(t, Default())
}
