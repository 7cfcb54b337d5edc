// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config 描述 config/*.yaml 的结构
package config

type SchoolHireConfig struct {
	MySQL MySQLConfig `yaml:"mysql"`
	Email EmailConfig `yaml:"email"`
}

type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

type EmailConfig struct {
	Aliyun AliyunEmailConfig `yaml:"aliyun"`
}

type AliyunEmailConfig struct {
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// 控制台配置好的发信地址
	AccountName string `yaml:"accountName"`
}
