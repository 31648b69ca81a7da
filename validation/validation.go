// Package validation проверяет необработанные payload'ы регистрации.
// Правила объявлены таблицами: для каждого поля — цепочка предикатов с
// сообщениями (required открывает дорогу проверкам длины и формата),
// отдельно — кросс-полевые правила. Поля друг друга не обрывают: все
// нарушения собираются за один проход.
package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Error описывает одно нарушенное правило для одного поля.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Valid  bool
	Errors []Error
}

// Payload — сырой JSON-объект запроса. Типам полей доверять нельзя.
type Payload map[string]interface{}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Более строгий вариант для интерактивной формы: только институтские адреса.
	eduEmailRegex = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.edu$`)
)

const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

const weakPasswordMessage = "password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a number, and a special character"

// NormalizeEmail приводит email к канонической форме (trim + lowercase).
// Идемпотентна; применяется перед каждой проверкой уникальности и перед записью.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsValidEmail проверяет общую форму local@domain.tld. Именно это правило
// используется на уровне API.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsEduEmail — вариант для слоя формы: дополнительно требует суффикс .edu.
// API им намеренно не пользуется.
func IsEduEmail(email string) bool {
	return eduEmailRegex.MatchString(strings.TrimSpace(email))
}

// IsStrongPassword: длина ≥ 8 символов (не байт) и все четыре класса
// символов присутствуют.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// StringField возвращает строковое значение поля с обрезанными пробелами.
// Не-строковые значения считаются отсутствующими.
func StringField(p Payload, key string) string {
	s, _ := p[key].(string)
	return strings.TrimSpace(s)
}

// NumberField приводит значение к числу. Принимаются JSON-числа и числовые
// строки (формы часто присылают числа строками).
func NumberField(p Payload, key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// StringList приводит значение к списку непустых строк.
// Второй результат false, если значение — не массив.
func StringList(p Payload, key string) ([]string, bool) {
	raw, ok := p[key].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, true
}

type fieldCheck struct {
	ok      func(p Payload) bool
	message string
}

type fieldRules struct {
	field  string
	checks []fieldCheck
}

// crossRule оценивается по всему payload'у: какое поле нарушено, зависит
// от значений других полей.
type crossRule func(p Payload) []Error

func evaluate(p Payload, rules []fieldRules, cross []crossRule) Result {
	var errs []Error
	for _, fr := range rules {
		for _, check := range fr.checks {
			if !check.ok(p) {
				errs = append(errs, Error{Field: fr.field, Message: check.message})
				break // дальнейшие проверки поля не имеют смысла
			}
		}
	}
	for _, rule := range cross {
		errs = append(errs, rule(p)...)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func required(field string) fieldCheck {
	return fieldCheck{
		ok:      func(p Payload) bool { return StringField(p, field) != "" },
		message: field + " is required",
	}
}

// Длины считаются в символах, а не в байтах: имена бывают не только латиницей.
func lengthBetween(field string, min, max int, message string) fieldCheck {
	return fieldCheck{
		ok: func(p Payload) bool {
			n := utf8.RuneCountInString(StringField(p, field))
			return n >= min && n <= max
		},
		message: message,
	}
}

func oneOf(field, message string, allowed ...string) fieldCheck {
	return fieldCheck{
		ok: func(p Payload) bool {
			v := StringField(p, field)
			for _, a := range allowed {
				if strings.EqualFold(v, a) {
					return true
				}
			}
			return false
		},
		message: message,
	}
}

var playerRules = []fieldRules{
	{"firstName", []fieldCheck{
		required("firstName"),
		lengthBetween("firstName", 2, 50, "firstName must be between 2 and 50 characters"),
	}},
	{"lastName", []fieldCheck{
		required("lastName"),
		lengthBetween("lastName", 2, 50, "lastName must be between 2 and 50 characters"),
	}},
	{"email", []fieldCheck{
		required("email"),
		{func(p Payload) bool { return IsValidEmail(StringField(p, "email")) }, "email is invalid"},
	}},
	{"password", []fieldCheck{
		required("password"),
		{func(p Payload) bool { return IsStrongPassword(rawString(p, "password")) }, weakPasswordMessage},
	}},
	{"sex", []fieldCheck{
		required("sex"),
		oneOf("sex", "sex must be male or female", "male", "female"),
	}},
	{"sport", []fieldCheck{
		required("sport"),
	}},
	{"position", []fieldCheck{
		required("position"),
		{func(p Payload) bool { return utf8.RuneCountInString(StringField(p, "position")) >= 2 }, "position must be at least 2 characters"},
	}},
	{"gpa", []fieldCheck{
		{func(p Payload) bool {
			gpa, ok := NumberField(p, "gpa")
			return ok && gpa >= 0.0 && gpa <= 4.0
		}, "gpa must be a number between 0.0 and 4.0"},
	}},
	{"scholarshipAmount", []fieldCheck{
		{func(p Payload) bool {
			if _, present := p["scholarshipAmount"]; !present || p["scholarshipAmount"] == nil {
				return true
			}
			amount, ok := NumberField(p, "scholarshipAmount")
			return ok && amount >= 0
		}, "scholarshipAmount must be a non-negative number"},
	}},
}

// Страна определяет, какое из полей state/region обязательно.
// Правило детерминировано по уже известному значению country, поэтому
// порядок проверки остальных полей значения не имеет.
var playerCrossRules = []crossRule{
	func(p Payload) []Error {
		if strings.EqualFold(StringField(p, "country"), "USA") {
			if StringField(p, "state") == "" {
				return []Error{{Field: "state", Message: "state is required for USA"}}
			}
			return nil
		}
		if StringField(p, "region") == "" {
			return []Error{{Field: "region", Message: "region is required"}}
		}
		return nil
	},
}

var coachRules = []fieldRules{
	{"firstName", []fieldCheck{
		required("firstName"),
		lengthBetween("firstName", 2, 50, "firstName must be between 2 and 50 characters"),
	}},
	{"lastName", []fieldCheck{
		required("lastName"),
		lengthBetween("lastName", 2, 50, "lastName must be between 2 and 50 characters"),
	}},
	{"email", []fieldCheck{
		required("email"),
		{func(p Payload) bool { return IsValidEmail(StringField(p, "email")) }, "email is invalid"},
	}},
	{"password", []fieldCheck{
		required("password"),
		{func(p Payload) bool { return IsStrongPassword(rawString(p, "password")) }, weakPasswordMessage},
	}},
	{"coachingCategory", []fieldCheck{
		required("coachingCategory"),
		oneOf("coachingCategory", "coachingCategory must be mens or womens", "mens", "womens"),
	}},
	{"sports", []fieldCheck{
		{func(p Payload) bool {
			sports, ok := StringList(p, "sports")
			return ok && len(sports) > 0
		}, "sports must be a non-empty list"},
	}},
	{"university", []fieldCheck{
		required("university"),
	}},
}

// ValidatePlayer проверяет payload регистрации игрока.
// Никогда не паникует; возвращает все нарушения разом.
func ValidatePlayer(p Payload) Result {
	return evaluate(p, playerRules, playerCrossRules)
}

// ValidateCoach проверяет payload регистрации тренера.
func ValidateCoach(p Payload) Result {
	return evaluate(p, coachRules, nil)
}

// rawString — как StringField, но без обрезки пробелов: пробелы в пароле
// значимы.
func rawString(p Payload, key string) string {
	s, _ := p[key].(string)
	return s
}
