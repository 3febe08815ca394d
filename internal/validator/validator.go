package validator

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidEmail 校验邮箱格式；空串视为「未设置邮箱」，不算错误
func IsValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return validate.Var(email, "email") == nil
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// MatchesPattern reports whether the value matches the configured pattern.
// Patterns come from config, so compilation results are cached; a pattern
// that fails to compile matches nothing.
func MatchesPattern(value, pattern string) bool {
	patternMu.Lock()
	re, ok := patternCache[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			re = nil
		}
		patternCache[pattern] = re
	}
	patternMu.Unlock()
	if re == nil {
		return false
	}
	return re.MatchString(value)
}
