/*
 * @module service/models/patient_test
 * @description 患者输入模型单元测试，穷举字段边界校验表
 * @architecture 测试层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 构造输入 -> 校验 -> 断言
 * @rules 边界值本身合法，越界一个最小步长即非法
 * @dependencies testing, stretchr/testify
 */

package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput 返回一个全部字段合法的输入
func validInput() *PatientInput {
	p := NewPatientInput()
	p.BMI = 28.5
	p.Age = 7
	p.GenHlth = 3
	p.PhysActivity = 1
	return p
}

func TestNewPatientInputDefaults(t *testing.T) {
	p := NewPatientInput()

	assert.Equal(t, 1, p.CholCheck)
	assert.Equal(t, 1, p.AnyHealthcare)
	assert.Equal(t, 4, p.Education)
	assert.Equal(t, 5, p.Income)
	assert.Equal(t, ModeScreening, p.Mode)
	assert.Equal(t, 0, p.HighBP)
	assert.Equal(t, 0, p.Smoker)
}

func TestValidateAcceptsValidInput(t *testing.T) {
	require.NoError(t, validInput().Validate())
}

// TestFieldBoundsTable 穷举校验表: 对每个字段分别在下界、上界和越界一步的位置校验
func TestFieldBoundsTable(t *testing.T) {
	// 字段到设置函数的映射，与校验表同步维护
	setters := map[string]func(p *PatientInput, v float64){
		"BMI":                  func(p *PatientInput, v float64) { p.BMI = v },
		"Age":                  func(p *PatientInput, v float64) { p.Age = int(v) },
		"GenHlth":              func(p *PatientInput, v float64) { p.GenHlth = int(v) },
		"PhysActivity":         func(p *PatientInput, v float64) { p.PhysActivity = int(v) },
		"HighBP":               func(p *PatientInput, v float64) { p.HighBP = int(v) },
		"HighChol":             func(p *PatientInput, v float64) { p.HighChol = int(v) },
		"CholCheck":            func(p *PatientInput, v float64) { p.CholCheck = int(v) },
		"Smoker":               func(p *PatientInput, v float64) { p.Smoker = int(v) },
		"Stroke":               func(p *PatientInput, v float64) { p.Stroke = int(v) },
		"HeartDiseaseorAttack": func(p *PatientInput, v float64) { p.HeartDiseaseorAttack = int(v) },
		"Fruits":               func(p *PatientInput, v float64) { p.Fruits = int(v) },
		"Veggies":              func(p *PatientInput, v float64) { p.Veggies = int(v) },
		"HvyAlcoholConsump":    func(p *PatientInput, v float64) { p.HvyAlcoholConsump = int(v) },
		"AnyHealthcare":        func(p *PatientInput, v float64) { p.AnyHealthcare = int(v) },
		"NoDocbcCost":          func(p *PatientInput, v float64) { p.NoDocbcCost = int(v) },
		"MentHlth":             func(p *PatientInput, v float64) { p.MentHlth = int(v) },
		"PhysHlth":             func(p *PatientInput, v float64) { p.PhysHlth = int(v) },
		"DiffWalk":             func(p *PatientInput, v float64) { p.DiffWalk = int(v) },
		"Sex":                  func(p *PatientInput, v float64) { p.Sex = int(v) },
		"Education":            func(p *PatientInput, v float64) { p.Education = int(v) },
		"Income":               func(p *PatientInput, v float64) { p.Income = int(v) },
	}

	for _, bound := range PatientFieldBounds {
		set, ok := setters[bound.Name]
		require.True(t, ok, "字段 %s 缺少设置函数", bound.Name)

		t.Run(bound.Name, func(t *testing.T) {
			// 边界值合法
			for _, v := range []float64{bound.Min, bound.Max} {
				p := validInput()
				set(p, v)
				assert.NoError(t, p.Validate(), "字段 %s 取边界值 %g 应合法", bound.Name, v)
			}

			// 越界一步非法
			for _, v := range []float64{bound.Min - 1, bound.Max + 1} {
				p := validInput()
				set(p, v)
				err := p.Validate()
				require.Error(t, err, "字段 %s 取越界值 %g 应非法", bound.Name, v)

				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, bound.Name, validationErr.Field)
			}
		})
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	p := validInput()
	p.Mode = "aggressive"

	err := p.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "mode", validationErr.Field)
}

func TestValidateAcceptsBothModes(t *testing.T) {
	for _, mode := range []string{ModeScreening, ModeBalanced} {
		p := validInput()
		p.Mode = mode
		assert.NoError(t, p.Validate())
	}
}
