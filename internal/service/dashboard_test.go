package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
)

var _ = Describe("DashboardService", func() {
	It("aggregates counts, open pipeline value and win rate", func() {
		contacts := &mockContactStore{countFn: func(_ context.Context, _ int64) (int64, error) { return 12, nil }}
		activities := &mockActivityStore{countFn: func(_ context.Context, _ int64) (int64, error) { return 30, nil }}
		deals := &mockDealStore{
			countFn: func(_ context.Context, _ int64) (int64, error) { return 9, nil },
			pipelineFn: func(_ context.Context, _ int64) ([]model.StageValue, error) {
				return []model.StageValue{
					{Stage: model.DealStageLead, Value: 1000, Count: 3},
					{Stage: model.DealStageNegotiation, Value: 4000, Count: 2},
					{Stage: model.DealStageWon, Value: 9000, Count: 3},
					{Stage: model.DealStageLost, Value: 2000, Count: 1},
				}, nil
			},
		}

		svc := service.NewDashboardService(contacts, deals, activities)
		stats, err := svc.Stats(context.Background(), 1)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Contacts).To(Equal(int64(12)))
		Expect(stats.Deals).To(Equal(int64(9)))
		Expect(stats.Activities).To(Equal(int64(30)))
		// Closed stages are excluded from the pipeline value.
		Expect(stats.PipelineValue).To(BeNumerically("==", 5000))
		Expect(stats.WinRate).To(BeNumerically("~", 0.75))
	})

	It("reports a zero win rate with no closed deals", func() {
		deals := &mockDealStore{
			pipelineFn: func(_ context.Context, _ int64) ([]model.StageValue, error) {
				return []model.StageValue{{Stage: model.DealStageLead, Value: 500, Count: 1}}, nil
			},
		}

		svc := service.NewDashboardService(&mockContactStore{}, deals, &mockActivityStore{})
		stats, err := svc.Stats(context.Background(), 1)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.WinRate).To(BeZero())
	})
})
