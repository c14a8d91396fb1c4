package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
)

func TestStudentUpdateParcialPreservaCampos(t *testing.T) {
	svc := NewStudentService(fixtureRepos(), nil, zap.NewNop())

	novoNome := "Ana Souza Oliveira"
	updated, err := svc.Update(context.Background(), 1, &dto.UpdateStudentRequest{Nome: &novoNome})
	if err != nil {
		t.Fatalf("Update falhou: %v", err)
	}
	if updated.Nome != novoNome {
		t.Errorf("nome: esperado %q, veio %q", novoNome, updated.Nome)
	}
	// campos não enviados não podem ser zerados
	if updated.CPF != "001" || updated.DataNasc != "2000-01-01" {
		t.Errorf("atualização parcial zerou campos: %+v", updated)
	}
}

func TestStudentUpdateInexistente(t *testing.T) {
	svc := NewStudentService(fixtureRepos(), nil, zap.NewNop())

	nome := "Qualquer"
	_, err := svc.Update(context.Background(), 999, &dto.UpdateStudentRequest{Nome: &nome})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("esperado ErrStudentNotFound, veio %v", err)
	}
}

func TestStudentDeleteInexistente(t *testing.T) {
	svc := NewStudentService(fixtureRepos(), nil, zap.NewNop())

	err := svc.Delete(context.Background(), 999)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("esperado ErrStudentNotFound, veio %v", err)
	}
}
