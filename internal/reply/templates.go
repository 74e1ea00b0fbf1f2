package reply

import (
	"strings"

	"conversational-task-assistant/internal/parser"
)

// Template tables keyed by language. All three tables carry the same key
// set; placeholders are written as {name} and substituted by render.

var englishTemplates = map[string]string{
	"add_task_success":      "{emoji} {title} has been added to your tasks!",
	"add_task_error":        "{emoji} Sorry, I couldn't add that task: {message}",
	"list_tasks_empty":      "{emoji} You don't have any tasks yet. Add one by saying 'Add a task to ...'",
	"list_tasks_single":     "{emoji} You have 1 task: {task_info}",
	"list_tasks_multiple":   "{emoji} You have {count} tasks: {task_list}",
	"complete_task_success": "{emoji} Task '{title}' has been marked as complete!",
	"complete_task_error":   "{emoji} Sorry, I couldn't mark that task as complete: {message}",
	"update_task_success":   "{emoji} Task has been updated!",
	"update_task_error":     "{emoji} Sorry, I couldn't update that task: {message}",
	"delete_task_success":   "{emoji} Task has been deleted!",
	"delete_task_error":     "{emoji} Sorry, I couldn't delete that task: {message}",
	"set_recurring_success": "{emoji} Task will repeat {pattern}!",
	"set_recurring_error":   "{emoji} Sorry, I couldn't set the recurrence: {message}",
	"unknown_intent":        "{emoji} I'm not sure what you mean. Could you try rephrasing?",
	"error_generic":         "{emoji} Something went wrong: {message}",
	"clarification_needed":  "{emoji} I need a bit more information. What task would you like to {action}?",
	"greeting":              "Hello! I'm your AI assistant. You can ask me to add, update, or manage your tasks. Try saying 'Add a task to buy groceries'",
	"help":                  "I can help you manage your tasks. Try saying: 'Add a task to buy groceries', 'Show my tasks', or 'Mark task as complete'.",
}

var urduTemplates = map[string]string{
	"add_task_success":      "{emoji} آپ کے کاموں میں {title} شامل کر دیا گیا ہے!",
	"add_task_error":        "{emoji} معذرت، میں وہ کام شامل نہیں کر سکا: {message}",
	"list_tasks_empty":      "{emoji} آپ کے پاس ابھی کوئی کام نہیں ہے۔ کام شامل کرنے کے لیے کہیں 'کام شامل کریں ...'",
	"list_tasks_single":     "{emoji} آپ کے پاس 1 کام ہے: {task_info}",
	"list_tasks_multiple":   "{emoji} آپ کے پاس {count} کام ہیں: {task_list}",
	"complete_task_success": "{emoji} کام '{title}' مکمل کے طور پر نشان زد کر دیا گیا ہے!",
	"complete_task_error":   "{emoji} معذرت، میں وہ کام مکمل نشان زد نہیں کر سکا: {message}",
	"update_task_success":   "{emoji} کام اپ ڈیٹ کر دیا گیا ہے!",
	"update_task_error":     "{emoji} معذرت، میں وہ کام اپ ڈیٹ نہیں کر سکا: {message}",
	"delete_task_success":   "{emoji} کام حذف کر دیا گیا ہے!",
	"delete_task_error":     "{emoji} معذرت، میں وہ کام حذف نہیں کر سکا: {message}",
	"set_recurring_success": "{emoji} کام {pattern} دہرایا جائے گا!",
	"set_recurring_error":   "{emoji} معذرت، میں دہرائی کا پیٹرن سیٹ نہیں کر سکا: {message}",
	"unknown_intent":        "{emoji} مجھے سمجھ نہیں آیا کہ آپ کیا کہنا چاہتے ہیں۔ کیا آپ دوبارہ کوشش کر سکتے ہیں؟",
	"error_generic":         "{emoji} کچھ غلط ہو گیا: {message}",
	"clarification_needed":  "{emoji} مجھے مزید معلومات درکار ہیں۔ آپ کون سا کام {action} چاہتے ہیں؟",
	"greeting":              "ہیلو! میں آپ کا AI اسسٹنٹ ہوں۔ آپ مجھ سے کام شامل کرنے، اپ ڈیٹ کرنے یا منظم کرنے کے لیے کہہ سکتے ہیں۔",
	"help":                  "میں آپ کے کام منظم کرنے میں مدد کر سکتا ہوں۔ کہہ کر دیکھیں: 'کام شامل کریں'، 'میرے کام دکھائیں'، یا 'کام مکمل کریں'۔",
}

var romanUrduTemplates = map[string]string{
	"add_task_success":      "{emoji} Aap ke kam mein {title} shamil kar diya gaya hai!",
	"add_task_error":        "{emoji} Maazrat, main woh kam shamil nahi kar saka: {message}",
	"list_tasks_empty":      "{emoji} Aap ke pass abhi koi kam nahi hai. Kam shamil karne ke liye kahen 'Kam shamil karo ...'",
	"list_tasks_single":     "{emoji} Aap ke pass 1 kam hai: {task_info}",
	"list_tasks_multiple":   "{emoji} Aap ke pass {count} kams hain: {task_list}",
	"complete_task_success": "{emoji} Kam '{title}' mukammal ho gaya hai!",
	"complete_task_error":   "{emoji} Maazrat, main woh kam mukammal nahi kar saka: {message}",
	"update_task_success":   "{emoji} Kam update ho gaya hai!",
	"update_task_error":     "{emoji} Maazrat, main woh kam update nahi kar saka: {message}",
	"delete_task_success":   "{emoji} Kam delete ho gaya hai!",
	"delete_task_error":     "{emoji} Maazrat, main woh kam delete nahi kar saka: {message}",
	"set_recurring_success": "{emoji} Kam {pattern} dohraya jaye ga!",
	"set_recurring_error":   "{emoji} Maazrat, main recurrence set nahi kar saka: {message}",
	"unknown_intent":        "{emoji} Mujhe samajh nahi aya ke aap kya kehna chahte hain. Kya aap dobara koshish kar sakte hain?",
	"error_generic":         "{emoji} Kuch ghalat ho gaya: {message}",
	"clarification_needed":  "{emoji} Mujhe mazeed maloomat darkar hain. Aap kon sa kam {action} chahte hain?",
	"greeting":              "Hello! Main aap ka AI assistant hun. Aap mujh se kam shamil karne, update karne ya manage karne ke liye keh sakte hain.",
	"help":                  "Main aap ke kam manage karne mein madad kar sakta hun. Keh kar dekhen: 'Kam shamil karo', 'Mere kam dikhao', ya 'Kam mukammal karo'.",
}

// templatesFor selects the table for a detected language. Unrecognized
// values fall back to English rather than failing.
func templatesFor(lang parser.Language) map[string]string {
	switch lang {
	case parser.LanguageUrdu:
		return urduTemplates
	case parser.LanguageRomanUrdu:
		return romanUrduTemplates
	default:
		return englishTemplates
	}
}

// render substitutes {name} placeholders in a template. Placeholders with
// no value in vars are left as-is.
func render(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Greeting returns the localized greeting used when a turn looks like a
// salutation rather than a command.
func Greeting(lang parser.Language) string {
	return templatesFor(lang)["greeting"]
}

// Help returns the localized usage hint.
func Help(lang parser.Language) string {
	return templatesFor(lang)["help"]
}

// Fallback returns the localized catch-all for input no intent matched.
func Fallback(lang parser.Language) string {
	return render(templatesFor(lang)["unknown_intent"], map[string]string{"emoji": EmojiWarning})
}
