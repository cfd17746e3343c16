package importer

import (
	"io"

	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

type Service struct {
	parser *Parser
}

func NewService() *Service {
	return &Service{parser: NewParser()}
}

// Import parses a statement CSV into create params.
func (s *Service) Import(r io.Reader) ([]transaction.CreateParams, error) {
	return s.parser.Parse(r)
}
