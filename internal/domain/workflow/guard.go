package workflow

// TransitionGuard decide se uma troca de status é permitida.
// O painel deixa o operador pular para qualquer etapa, então o
// guard padrão libera tudo; regras mais rígidas entram aqui.
type TransitionGuard func(from, to Status) bool

// AllowAll permite qualquer transição entre status válidos.
func AllowAll(from, to Status) bool {
	return true
}
