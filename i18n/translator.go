package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "fpt" or "subtype").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "invalid_enum":
			return "許可されていない値です"
		case "pattern":
			return "書式が一致しません"
		case "any_of":
			return "どの候補スキーマにも一致しません"
		case "parse_error":
			return "解析エラー"
		case "malformed_condition_uri":
			return "condition URI の文法が不正です"
		case "unsupported_condition_type":
			return "未対応の condition タイプです"
		case "unsupported_subtype":
			return "未対応のサブタイプです"
		case "engine_fault":
			return "バリデーションエンジンの内部障害です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "invalid_enum":
			return "value not allowed"
		case "pattern":
			return "format mismatch"
		case "any_of":
			return "no candidate schema matched"
		case "parse_error":
			return "parse error"
		case "malformed_condition_uri":
			return "malformed condition URI"
		case "unsupported_condition_type":
			return "unsupported condition type"
		case "unsupported_subtype":
			return "unsupported subtype"
		case "engine_fault":
			return "validation engine fault"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
