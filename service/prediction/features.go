/*
 * @module service/prediction/features
 * @description 特征派生器，将原始患者输入确定性地转换为模型训练时的有序特征行并做标准化
 * @architecture 分层架构 - 预测服务层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow BMI防御性校验 -> 区间截断 -> 派生组合特征 -> 按feature_names投影 -> 缩放
 * @rules 派生纯函数且确定；Lifestyle 仅在 Cardio_x_Lifestyle 中截断到 [0,3]，原始列保持未截断，
 *        该不对称与训练时的特征定义一致，不得修正
 * @dependencies riskscreen-service/service/bundle, riskscreen-service/service/models
 * @refs service/prediction/service.go
 */

package prediction

import (
	"riskscreen-service/service/bundle"
	"riskscreen-service/service/models"
)

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bmiCategory BMI 分箱: (0,18.5] (18.5,25] (25,30] (30,40] (40,100] -> 0..4
func bmiCategory(bmi float64) float64 {
	switch {
	case bmi <= 18.5:
		return 0
	case bmi <= 25:
		return 1
	case bmi <= 30:
		return 2
	case bmi <= 40:
		return 3
	default:
		return 4
	}
}

// DeriveFeatures 构建缩放后的特征行
// 即使输入已通过表单校验，这里仍防御性地再次校验BMI，因为派生器也可能被其他调用方直接使用
func DeriveFeatures(b *bundle.Bundle, p *models.PatientInput) ([]float64, error) {
	if !(p.BMI > 10 && p.BMI <= 80) {
		return nil, models.NewValidationError("BMI", "取值 %g 必须在 10 到 80 之间", p.BMI)
	}

	bmi := clip(p.BMI, 10, 80)
	mentHlth := clip(float64(p.MentHlth), 0, 30)
	physHlth := clip(float64(p.PhysHlth), 0, 30)

	age := float64(p.Age)
	genHlth := float64(p.GenHlth)
	highBP := float64(p.HighBP)

	cardioRisk := highBP + float64(p.HighChol) + float64(p.HeartDiseaseorAttack) + float64(p.Stroke)
	lifestyle := float64(p.PhysActivity) + float64(p.Fruits) + float64(p.Veggies) - float64(p.HvyAlcoholConsump)

	isObese := 0.0
	if bmi >= 30 {
		isObese = 1
	}
	isOverweight := 0.0
	if bmi >= 25 && bmi < 30 {
		isOverweight = 1
	}
	isSenior := 0.0
	if p.Age >= 9 {
		isSenior = 1
	}

	columns := map[string]float64{
		"BMI":                  bmi,
		"Age":                  age,
		"GenHlth":              genHlth,
		"PhysActivity":         float64(p.PhysActivity),
		"HighBP":               highBP,
		"HighChol":             float64(p.HighChol),
		"CholCheck":            float64(p.CholCheck),
		"Smoker":               float64(p.Smoker),
		"Stroke":               float64(p.Stroke),
		"HeartDiseaseorAttack": float64(p.HeartDiseaseorAttack),
		"Fruits":               float64(p.Fruits),
		"Veggies":              float64(p.Veggies),
		"HvyAlcoholConsump":    float64(p.HvyAlcoholConsump),
		"AnyHealthcare":        float64(p.AnyHealthcare),
		"NoDocbcCost":          float64(p.NoDocbcCost),
		"MentHlth":             mentHlth,
		"PhysHlth":             physHlth,
		"DiffWalk":             float64(p.DiffWalk),
		"Sex":                  float64(p.Sex),
		"Education":            float64(p.Education),
		"Income":               float64(p.Income),

		"CardioRisk":         cardioRisk,
		"Lifestyle":          lifestyle,
		"HealthBurden":       mentHlth + physHlth,
		"Is_Obese":           isObese,
		"Is_Overweight":      isOverweight,
		"BMI_Cat":            bmiCategory(bmi),
		"Is_Senior":          isSenior,
		"Age_x_BP":           age * highBP,
		"Age_x_Obese":        age * isObese,
		"Cardio_x_Lifestyle": cardioRisk * (3 - clip(lifestyle, 0, 3)),
		"BMI_x_Cardio":       bmi * cardioRisk,
		"HealthAccess":       float64(p.AnyHealthcare) - float64(p.NoDocbcCost),
		"GenHlth_x_Phys":     genHlth * physHlth,
		"Age_x_GenHlth":      age * genHlth,
	}

	// 按训练时的列顺序投影，多余的列丢弃，缺失的列视为配置错误
	row := make([]float64, len(b.FeatureNames))
	for i, name := range b.FeatureNames {
		v, ok := columns[name]
		if !ok {
			return nil, models.NewConfigurationError("模型包要求的特征列 %s 不存在", name)
		}
		row[i] = v
	}

	return b.Scaler.Transform(row), nil
}
