package i18n

var ptBRCatalog = NewCatalog("pt-BR", map[Code]string{
	CodeUnknown:          "Ocorreu um erro inesperado",
	CodeNotFound:         "{{.Entity}} {{.ID}} não foi encontrado",
	CodeStoreUnavailable: "O armazenamento está temporariamente indisponível, tente novamente",

	CodeFacilityNotIdle:        "{{.Facility}} já está ocupada com {{.Task}}",
	CodeFacilityIdle:           "{{.Facility}} não tem ordem para cancelar",
	CodeFacilityNotSpecial:     "{{.Facility}} é uma instalação básica e não aceita ordens",
	CodeFacilityNotBasic:       "{{.Facility}} é uma instalação especial e não pode ser ampliada",
	CodeOrderUnknown:           "{{.Facility}} não oferece a ordem {{.Order}}",
	CodeInvalidOrderParameters: "A ordem {{.Order}} precisa de duração e custo informados pelo emissor",
	CodeAdvanceDaysInvalid:     "O tempo deve avançar pelo menos um dia",

	CodeLimitExceeded:          "Nenhuma outra instalação especial pode ser adquirida no nível {{.Level}} (limite {{.Limit}})",
	CodeCharacterLevelTooLow:   "{{.Facility}} requer personagem de nível {{.RequiredLevel}}",
	CodeFacilityAlreadyPresent: "O bastião já possui {{.Facility}}",
	CodeFacilityUnknownName:    "{{.Facility}} não é uma instalação conhecida",
	CodeSizeUnknown:            "{{.Size}} não é um tamanho válido de instalação",
	CodeSizeTransitionInvalid:  "Uma instalação {{.Current}} não pode ser ampliada para {{.Target}}",

	CodeEventUnknown:        "{{.Event}} não é um evento de bastião conhecido",
	CodeEventRollOutOfRange: "Rolagens de evento devem ficar entre 1 e 100",
	CodeThreatLevelUnknown:  "{{.Threat}} não é um nível de ameaça válido",
})
