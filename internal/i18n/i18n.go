package i18n

// This package holds the static bilingual strings the backend serves: error
// messages, the default plan-generation prompt, and the chat session texts.
// Everything is compiled in; there is no file loading or runtime registration.

// Language identifies a supported UI language.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"

	// DefaultLang is used whenever a request does not name a language.
	DefaultLang = LangZH
)

// Normalize maps a raw language selector from a request onto a supported
// Language, falling back to the default for anything unrecognized.
func Normalize(raw string) Language {
	switch Language(raw) {
	case LangZH, LangEN:
		return Language(raw)
	default:
		return DefaultLang
	}
}

// Supported returns all languages the backend carries strings for.
func Supported() []Language {
	return []Language{LangZH, LangEN}
}

var messages = map[Language]map[string]string{
	LangZH: {
		"error.validation":          "消息内容不能为空",
		"error.rate_limit":          "请求过于频繁，请稍后再试",
		"error.service_unavailable": "AI服务暂时不可用，请稍后再试",
		"error.auth_error":          "AI服务认证失败，请检查访问令牌",
		"error.quota_exceeded":      "AI服务配额已用完，请稍后再试",
		"error.unknown":             "服务器内部错误",
		"chat.apology":              "抱歉，AI服务暂时不可用。请稍后再试。",
		"chat.welcome": "哈喽！我是你的健身伙伴weekwise 🏋🏻‍♂️\n告诉我你的目标，我会帮你制定一个属于你的每周训练计划。\n\n你可以这样告诉我：\n\n\"我想减脂但不想太累\"\n\"我最近在练CrossFit，想更系统地安排训练\"\n\"我想改善体态，多练核心和背部\"\n\"我没有器械，只能在家练\"\n\n或者，直接和我聊聊：\n\n\"我想变得更有力量。\"\n\"我希望能坚持下来，不再半途而废。\"\n\n我会倾听，然后帮你把目标变成一个可以贴在墙上的计划 🧾💪",
		"plan.default_prompt":       "请生成一个通用的周训练计划",
	},
	LangEN: {
		"error.validation":          "Message content must not be empty",
		"error.rate_limit":          "Too many requests, please try again later",
		"error.service_unavailable": "The AI service is temporarily unavailable, please try again later",
		"error.auth_error":          "AI service authentication failed, please check the access token",
		"error.quota_exceeded":      "The AI service quota has been exhausted, please try again later",
		"error.unknown":             "Internal server error",
		"chat.apology":              "Sorry, AI service is temporarily unavailable. Please try again later.",
		"chat.welcome": "Hello! I'm Weekwise, your fitness buddy 🏋🏻‍♂️\n Tell me your goals and I'll create a weekly training plan just for you. \n\nYou can tell me things like: \n\n\"I want to lose fat without overtraining myself.\"\n\"I've been doing CrossFit lately and want a more structured approach.\"\n\"I want to improve my posture and focus on my core and back.\"\n\"I don't have any equipment, so I can only train at home.\"\n\nOr, just chat with me: \n\n\"I want to get stronger.\"\n\"I hope to stick with it and not give up halfway.\"\n\nI'll listen and help you turn your goals into a plan you can post on your wall 🧾💪",
		"plan.default_prompt":       "Please generate a general weekly training plan",
	},
}

// T returns the string registered for key in the given language. Lookups fall
// back to the default language, then to the key itself, so a missing entry is
// visible rather than silent.
func T(key string, lang Language) string {
	if data, ok := messages[lang]; ok {
		if text, ok := data[key]; ok {
			return text
		}
	}
	if lang != DefaultLang {
		if text, ok := messages[DefaultLang][key]; ok {
			return text
		}
	}
	return key
}

// Apology is the fixed message appended to a chat transcript when the gateway
// call fails.
func Apology(lang Language) string { return T("chat.apology", lang) }

// Welcome seeds a new chat session's transcript.
func Welcome(lang Language) string { return T("chat.welcome", lang) }

// DefaultPlanPrompt substitutes for an omitted prompt on the direct
// generation endpoint.
func DefaultPlanPrompt(lang Language) string { return T("plan.default_prompt", lang) }
