package service

import "promptrelay.app/relay/common/llm"

type Services struct {
	generator llm.Generator
}

func NewServices(generator llm.Generator) *Services {
	return &Services{generator: generator}
}

func (s *Services) Generate() GenerateService {
	return NewGenerateService(s.generator)
}
