package configurator

import "fmt"

// ErrorKind — классификация ошибок конфигурирования
type ErrorKind string

const (
	ErrUnknownPart   ErrorKind = "unknown_part"   // часть не из активной категории
	ErrUnknownOption ErrorKind = "unknown_option" // опция отсутствует в каталоге
	ErrWrongPart     ErrorKind = "wrong_part"     // опция принадлежит другой части
	ErrBlocked       ErrorKind = "blocked"        // опция заблокирована правилом несовместимости
	ErrIncomplete    ErrorKind = "incomplete"     // конфигурация не завершена
)

// ConfigurationError — типизированная ошибка конфигурирования.
// Subject — ID опции или имя части, к которым относится ошибка;
// Reason — человекочитаемое пояснение (для blocked — текст правила).
type ConfigurationError struct {
	Kind    ErrorKind
	Subject string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	switch e.Kind {
	case ErrUnknownPart:
		return fmt.Sprintf("configuration: unknown part %q", e.Subject)
	case ErrUnknownOption:
		return fmt.Sprintf("configuration: unknown option %q", e.Subject)
	case ErrWrongPart:
		return fmt.Sprintf("configuration: option %q belongs to another part", e.Subject)
	case ErrBlocked:
		return fmt.Sprintf("configuration: option %q is blocked: %s", e.Subject, e.Reason)
	case ErrIncomplete:
		return fmt.Sprintf("configuration incomplete, part %q unselected", e.Subject)
	}
	return fmt.Sprintf("configuration: %s (%s)", e.Kind, e.Subject)
}

// IntegrityError — ошибка целостности данных: правило ссылается на опцию,
// которой нет в каталоге, либо правило само по себе невалидно.
// Такие правила нельзя молча считать "совместимо / без корректировки".
type IntegrityError struct {
	Rule     string // краткое описание правила
	OptionID string // висячая ссылка
	Detail   string
}

func (e *IntegrityError) Error() string {
	if e.OptionID != "" {
		return fmt.Sprintf("catalog integrity: rule %s references unknown option %q", e.Rule, e.OptionID)
	}
	return fmt.Sprintf("catalog integrity: rule %s: %s", e.Rule, e.Detail)
}
