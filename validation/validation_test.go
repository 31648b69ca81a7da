package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlayerPayload() Payload {
	return Payload{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john.doe@example.com",
		"password":  "Password123!",
		"sex":       "male",
		"sport":     "basketball",
		"position":  "PG",
		"gpa":       3.5,
		"country":   "USA",
		"state":     "CA",
	}
}

func validCoachPayload() Payload {
	return Payload{
		"firstName":        "Jane",
		"lastName":         "Smith",
		"email":            "jane.smith@example.com",
		"password":         "Password123!",
		"coachingCategory": "womens",
		"sports":           []interface{}{"basketball", "volleyball"},
		"university":       "Stanford",
	}
}

func fieldsWithErrors(result Result) map[string]string {
	out := make(map[string]string)
	for _, e := range result.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidPlayerPayloadPasses(t *testing.T) {
	result := ValidatePlayer(validPlayerPayload())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestPlayerRequiredFields(t *testing.T) {
	for _, field := range []string{"firstName", "lastName", "email", "password", "sex", "sport", "position"} {
		t.Run(field, func(t *testing.T) {
			payload := validPlayerPayload()
			delete(payload, field)

			result := ValidatePlayer(payload)
			assert.False(t, result.Valid)
			assert.Contains(t, fieldsWithErrors(result), field)
		})
	}
}

func TestWhitespaceOnlyCountsAsMissing(t *testing.T) {
	payload := validPlayerPayload()
	payload["firstName"] = "   "

	result := ValidatePlayer(payload)
	require.False(t, result.Valid)
	assert.Equal(t, "firstName is required", fieldsWithErrors(result)["firstName"])
}

func TestAllViolationsReportedInOnePass(t *testing.T) {
	payload := validPlayerPayload()
	payload["firstName"] = ""
	payload["email"] = "not-an-email"
	payload["gpa"] = "five"

	result := ValidatePlayer(payload)
	require.False(t, result.Valid)

	fields := fieldsWithErrors(result)
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "gpa")
}

func TestNameLengthBounds(t *testing.T) {
	payload := validPlayerPayload()
	payload["firstName"] = "J"
	result := ValidatePlayer(payload)
	assert.Contains(t, fieldsWithErrors(result), "firstName")

	payload["firstName"] = "JJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJJ" // 51 символ
	result = ValidatePlayer(payload)
	assert.Contains(t, fieldsWithErrors(result), "firstName")

	payload["firstName"] = "Jo"
	result = ValidatePlayer(payload)
	assert.NotContains(t, fieldsWithErrors(result), "firstName")
}

// Длины считаются в символах: кириллическое имя из 26 букв занимает 52 байта,
// но укладывается в лимит 50 символов.
func TestNameLengthCountsRunesNotBytes(t *testing.T) {
	payload := validPlayerPayload()

	payload["firstName"] = strings.Repeat("и", 26)
	result := ValidatePlayer(payload)
	assert.NotContains(t, fieldsWithErrors(result), "firstName")

	payload["firstName"] = strings.Repeat("и", 51)
	result = ValidatePlayer(payload)
	assert.Contains(t, fieldsWithErrors(result), "firstName")

	payload["firstName"] = "Jo"
	payload["position"] = "нп" // два символа, четыре байта
	result = ValidatePlayer(payload)
	assert.NotContains(t, fieldsWithErrors(result), "position")
}

func TestEmailFormat(t *testing.T) {
	cases := map[string]bool{
		"john@example.com":    true,
		"j.doe+x@mail.co.uk":  true,
		"missing-at.com":      false,
		"no-tld@domain":       false,
		"@example.com":        false,
		"spaces in@email.com": false,
	}
	for email, want := range cases {
		assert.Equal(t, want, IsValidEmail(email), email)
	}
}

func TestEduEmailVariantIsStricter(t *testing.T) {
	assert.True(t, IsEduEmail("athlete@stanford.edu"))
	assert.True(t, IsEduEmail("athlete@STANFORD.EDU"))
	assert.False(t, IsEduEmail("athlete@gmail.com"))

	// Общее правило API принимает оба адреса.
	assert.True(t, IsValidEmail("athlete@stanford.edu"))
	assert.True(t, IsValidEmail("athlete@gmail.com"))
}

func TestPasswordStrength(t *testing.T) {
	assert.True(t, IsStrongPassword("Password123!"))

	// Каждый случай нарушает хотя бы один из четырёх классов.
	for _, weak := range []string{
		"weak",         // длина, верхний регистр, цифра, символ
		"password123!", // нет верхнего регистра
		"PASSWORD123!", // нет нижнего регистра
		"Password!!!!", // нет цифры
		"Password1234", // нет символа
		"Pa1!",         // короткий
		"Aa1!ффф",      // 7 символов, хотя в байтах длиннее восьми
	} {
		assert.False(t, IsStrongPassword(weak), weak)
	}

	// Минимальная длина считается в символах, многобайтовые не мешают.
	assert.True(t, IsStrongPassword("Aa1!фффф"))
}

func TestWeakPasswordYieldsSingleCombinedError(t *testing.T) {
	payload := validPlayerPayload()
	payload["password"] = "weak"

	result := ValidatePlayer(payload)
	require.False(t, result.Valid)

	count := 0
	for _, e := range result.Errors {
		if e.Field == "password" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSexEnum(t *testing.T) {
	payload := validPlayerPayload()

	payload["sex"] = "Female" // регистр не важен
	assert.True(t, ValidatePlayer(payload).Valid)

	payload["sex"] = "other"
	result := ValidatePlayer(payload)
	assert.Contains(t, fieldsWithErrors(result), "sex")
}

func TestGPABoundaries(t *testing.T) {
	cases := map[float64]bool{
		0.0:   true,
		4.0:   true,
		-0.01: false,
		4.01:  false,
	}
	for gpa, want := range cases {
		payload := validPlayerPayload()
		payload["gpa"] = gpa
		result := ValidatePlayer(payload)
		if want {
			assert.NotContains(t, fieldsWithErrors(result), "gpa")
		} else {
			assert.Contains(t, fieldsWithErrors(result), "gpa")
		}
	}
}

func TestGPACoercion(t *testing.T) {
	payload := validPlayerPayload()

	payload["gpa"] = "3.8" // числовая строка допустима
	assert.True(t, ValidatePlayer(payload).Valid)

	payload["gpa"] = "not a number"
	assert.Contains(t, fieldsWithErrors(ValidatePlayer(payload)), "gpa")

	delete(payload, "gpa")
	assert.Contains(t, fieldsWithErrors(ValidatePlayer(payload)), "gpa")
}

func TestCountryConditionalStateRegion(t *testing.T) {
	payload := validPlayerPayload()
	payload["country"] = "USA"
	payload["state"] = ""
	result := ValidatePlayer(payload)
	assert.Contains(t, fieldsWithErrors(result), "state")

	payload = validPlayerPayload()
	payload["country"] = "Canada"
	delete(payload, "state")
	payload["region"] = ""
	result = ValidatePlayer(payload)
	assert.Contains(t, fieldsWithErrors(result), "region")

	payload["region"] = "Ontario"
	assert.True(t, ValidatePlayer(payload).Valid)

	// Сравнение страны без учёта регистра.
	payload = validPlayerPayload()
	payload["country"] = "usa"
	payload["state"] = "CA"
	assert.True(t, ValidatePlayer(payload).Valid)
}

func TestScholarshipAmountOptional(t *testing.T) {
	payload := validPlayerPayload()
	assert.True(t, ValidatePlayer(payload).Valid)

	payload["scholarshipAmount"] = 15000.0
	assert.True(t, ValidatePlayer(payload).Valid)

	payload["scholarshipAmount"] = -1.0
	assert.Contains(t, fieldsWithErrors(ValidatePlayer(payload)), "scholarshipAmount")

	payload["scholarshipAmount"] = "abc"
	assert.Contains(t, fieldsWithErrors(ValidatePlayer(payload)), "scholarshipAmount")
}

func TestValidCoachPayloadPasses(t *testing.T) {
	result := ValidateCoach(validCoachPayload())
	assert.True(t, result.Valid)
}

func TestCoachSports(t *testing.T) {
	payload := validCoachPayload()
	payload["sports"] = []interface{}{}
	assert.Contains(t, fieldsWithErrors(ValidateCoach(payload)), "sports")

	payload["sports"] = "basketball" // не массив
	assert.Contains(t, fieldsWithErrors(ValidateCoach(payload)), "sports")

	payload["sports"] = []interface{}{"basketball", "football"}
	assert.NotContains(t, fieldsWithErrors(ValidateCoach(payload)), "sports")
}

func TestCoachingCategoryEnum(t *testing.T) {
	payload := validCoachPayload()
	payload["coachingCategory"] = "Mens"
	assert.True(t, ValidateCoach(payload).Valid)

	payload["coachingCategory"] = "juniors"
	assert.Contains(t, fieldsWithErrors(ValidateCoach(payload)), "coachingCategory")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "foo@bar.com", NormalizeEmail("Foo@Bar.COM "))

	// Идемпотентность
	once := NormalizeEmail("  MiXeD@CaSe.Org")
	assert.Equal(t, once, NormalizeEmail(once))
}

func TestStringList(t *testing.T) {
	p := Payload{"sports": []interface{}{" basketball ", "", 42, "football"}}
	list, ok := StringList(p, "sports")
	require.True(t, ok)
	assert.Equal(t, []string{"basketball", "football"}, list)

	_, ok = StringList(Payload{"sports": "basketball"}, "sports")
	assert.False(t, ok)
}
