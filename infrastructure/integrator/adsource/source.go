package adsource

import (
	"context"

	"github.com/adgenius/adgenius-api/internal/domain"
)

// Source é um adaptador de uma fonte de anúncios. Cada adaptador sabe
// buscar conteúdo real quando há credencial configurada e sintetizar
// conteúdo de fallback quando não há. Falhas de rede ou de parsing nunca
// propagam para fora do agregador: a ausência de credencial é um estado
// suportado, não um erro.
type Source interface {
	// Platform identifica a plataforma atendida pelo adaptador.
	Platform() string

	// AlwaysOn indica fontes de inteligência de mercado consultadas em
	// toda requisição, independentemente da plataforma pedida.
	AlwaysOn() bool

	// HasCredential informa se a credencial da fonte está configurada.
	HasCredential() bool

	// Fetch consulta a API externa. Uma única tentativa, sem retry.
	Fetch(ctx context.Context, product, industry string) ([]domain.AdExample, error)

	// Fallback sintetiza conteúdo local para a plataforma. Fontes
	// always-on retornam nil: sem credencial elas simplesmente não
	// contribuem.
	Fallback(product, industry string) []domain.AdExample
}

// Rand é a fonte de aleatoriedade usada pelo catálogo de fallback.
// *math/rand.Rand satisfaz a interface; testes injetam uma fonte com
// semente fixa para obter saída determinística.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}
