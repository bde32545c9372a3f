package service

import (
	"context"
	"errors"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
)

// ErrInjectedFailure is raised by the *TxExc operations after their write so
// operators can observe the rollback. It is never returned in normal flow.
var ErrInjectedFailure = errors.New("injected failure after write")

// IInternalService is the trusted operational surface. It talks to the
// setting repository directly in three modes: single statements without a
// transaction, statements inside a transaction, and a transaction that
// fails on purpose after the write. It performs no business validation and
// no soft-delete filtering; keep it walled off from the entity services.
type IInternalService interface {
	ListSettings(ctx context.Context, req *dto.ListSettingsRequest) ([]*dto.SettingResponse, error)

	CreateSetting(ctx context.Context, req *dto.CreateSettingRequest) (*dto.SettingResponse, error)
	UpdateSetting(ctx context.Context, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error)
	DeleteSetting(ctx context.Context, name string) (*dto.SettingResponse, error)

	CreateSettingTx(ctx context.Context, req *dto.CreateSettingRequest) (*dto.SettingResponse, error)
	UpdateSettingTx(ctx context.Context, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error)
	DeleteSettingTx(ctx context.Context, name string) (*dto.SettingResponse, error)

	CreateSettingTxExc(ctx context.Context, req *dto.CreateSettingRequest) error
	UpdateSettingTxExc(ctx context.Context, req *dto.UpdateSettingRequest) error
	DeleteSettingTxExc(ctx context.Context, name string) error
}

type internalService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInternalService(uowFactory unitofwork.RepositoryFactory) IInternalService {
	return &internalService{
		uowFactory: uowFactory,
	}
}

func (s *internalService) ListSettings(ctx context.Context, req *dto.ListSettingsRequest) ([]*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if req.Name != nil {
		specs = append(specs, specification.NameEquals{Name: *req.Name})
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	specs = append(specs,
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)

	settings, err := uow.SettingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SettingResponse, len(settings))
	for i, st := range settings {
		res[i] = settingToResponse(st)
	}
	return res, nil
}

// ---- single statements, no transaction ----

func (s *internalService) CreateSetting(ctx context.Context, req *dto.CreateSettingRequest) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting := entity.Setting{Name: req.Name, Value: req.Value}
	if err := uow.SettingRepository().Create(ctx, &setting); err != nil {
		return nil, err
	}
	return settingToResponse(&setting), nil
}

func (s *internalService) UpdateSetting(ctx context.Context, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting, err := uow.SettingRepository().UpdateByName(ctx, req.Name, req.Value)
	if err != nil {
		return nil, err
	}
	return settingToResponse(setting), nil
}

func (s *internalService) DeleteSetting(ctx context.Context, name string) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting, err := uow.SettingRepository().DeleteByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return settingToResponse(setting), nil
}

// ---- statements inside one transaction ----

// probeSelect issues a throwaway read so the transactional endpoints always
// execute more than one statement per transaction.
func (s *internalService) probeSelect(ctx context.Context, uow unitofwork.UnitOfWork) error {
	_, err := uow.SettingRepository().FindAll(ctx,
		specification.Pagination{Limit: 1, Offset: 0},
	)
	return err
}

func (s *internalService) CreateSettingTx(ctx context.Context, req *dto.CreateSettingRequest) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting := entity.Setting{Name: req.Name, Value: req.Value}
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		if err := s.probeSelect(ctx, uow); err != nil {
			return err
		}
		return uow.SettingRepository().Create(ctx, &setting)
	})
	if err != nil {
		return nil, err
	}
	return settingToResponse(&setting), nil
}

func (s *internalService) UpdateSettingTx(ctx context.Context, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var setting *entity.Setting
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		if err := s.probeSelect(ctx, uow); err != nil {
			return err
		}
		updated, err := uow.SettingRepository().UpdateByName(ctx, req.Name, req.Value)
		if err != nil {
			return err
		}
		setting = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settingToResponse(setting), nil
}

func (s *internalService) DeleteSettingTx(ctx context.Context, name string) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var setting *entity.Setting
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		if err := s.probeSelect(ctx, uow); err != nil {
			return err
		}
		deleted, err := uow.SettingRepository().DeleteByName(ctx, name)
		if err != nil {
			return err
		}
		setting = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settingToResponse(setting), nil
}

// ---- transactions that fail on purpose after the write ----

func (s *internalService) CreateSettingTxExc(ctx context.Context, req *dto.CreateSettingRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting := entity.Setting{Name: req.Name, Value: req.Value}
	return unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		if err := s.probeSelect(ctx, uow); err != nil {
			return err
		}
		if err := uow.SettingRepository().Create(ctx, &setting); err != nil {
			return err
		}
		return ErrInjectedFailure
	})
}

func (s *internalService) UpdateSettingTxExc(ctx context.Context, req *dto.UpdateSettingRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	return unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		if err := s.probeSelect(ctx, uow); err != nil {
			return err
		}
		if _, err := uow.SettingRepository().UpdateByName(ctx, req.Name, req.Value); err != nil {
			return err
		}
		return ErrInjectedFailure
	})
}

func (s *internalService) DeleteSettingTxExc(ctx context.Context, name string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	return unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		if err := s.probeSelect(ctx, uow); err != nil {
			return err
		}
		if _, err := uow.SettingRepository().DeleteByName(ctx, name); err != nil {
			return err
		}
		return ErrInjectedFailure
	})
}

func settingToResponse(s *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Id:    s.Id,
		Name:  s.Name,
		Value: s.Value,
	}
}
