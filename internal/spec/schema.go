/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package spec

// dialogSchema is the JSON schema every dialog document must satisfy before
// decoding. It guards field types and the closed enums; semantic rules
// (unique names, single default button) live in Normalize.
const dialogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "modalkit dialog",
  "type": "object",
  "properties": {
    "title": {"type": "string"},
    "icon": {"type": "string"},
    "image": {"type": "string"},
    "message": {"type": "array", "items": {"type": "string"}},
    "comment": {"type": "array", "items": {"type": "string"}},
    "prompts": {"type": "array", "items": {"$ref": "#/definitions/prompt"}},
    "buttons": {"type": "array", "items": {"$ref": "#/definitions/button"}},
    "cancelButton": {"type": "string"},
    "defaultButton": {"type": "string"},
    "buttonRows": {"type": "integer", "minimum": 1},
    "contentAlignment": {"$ref": "#/definitions/alignment"},
    "font": {"$ref": "#/definitions/font"},
    "backgroundColor": {"type": "string"},
    "accentColor": {"type": "string"},
    "window": {
      "type": "object",
      "properties": {
        "style": {"enum": ["default", "none", "tool"]},
        "resizeMode": {"enum": ["noResize", "canResize", "canMinimize"]},
        "minWidth": {"type": "number", "minimum": 0},
        "minHeight": {"type": "number", "minimum": 0},
        "maxWidth": {"type": "number", "minimum": 0},
        "maxHeight": {"type": "number", "minimum": 0},
        "topmost": {"type": "boolean"},
        "hideTaskbarIcon": {"type": "boolean"}
      }
    },
    "timeout": {"type": "integer", "minimum": 0},
    "countdown": {"type": "boolean"},
    "collapsibleGroups": {"type": "boolean"},
    "copyButton": {"type": "boolean"},
    "grid": {"$ref": "#/definitions/table"},
    "grids": {"type": "array", "items": {"$ref": "#/definitions/table"}},
    "gridOptions": {
      "type": "object",
      "properties": {
        "asList": {"type": "boolean"},
        "selectionMode": {"enum": ["none", "singleCell", "singleRow", "multiRow"]},
        "hideSearch": {"type": "boolean"}
      }
    }
  },
  "definitions": {
    "alignment": {"enum": ["left", "center", "right"]},
    "font": {
      "type": "object",
      "properties": {
        "family": {"type": "string"},
        "size": {"type": "integer", "minimum": 1},
        "color": {"type": "string"}
      }
    },
    "prompt": {
      "oneOf": [
        {"type": "string"},
        {
          "type": "object",
          "properties": {
            "name": {"type": "string"},
            "message": {"type": "string"},
            "type": {"enum": ["text", "checkbox", "password", "date", "link", "fileOpen", "fileSave"]},
            "validateSet": {"type": "array", "items": {"type": "string"}, "minItems": 1},
            "showSetAs": {"enum": ["combo", "radio"]},
            "required": {"type": "boolean"},
            "pattern": {"type": "string"},
            "default": {},
            "readOnly": {"type": "boolean"},
            "lineHeight": {"type": "integer", "minimum": 1},
            "alignment": {"$ref": "#/definitions/alignment"},
            "font": {"$ref": "#/definitions/font"},
            "messagePosition": {"enum": ["top", "left"]},
            "collapsible": {"type": "boolean"},
            "group": {"type": "string"},
            "tab": {"type": "string"},
            "radioGroup": {"type": "string"},
            "showSeparator": {"type": "boolean"},
            "keyringKey": {"type": "string"}
          }
        }
      ]
    },
    "button": {
      "oneOf": [
        {"type": "string"},
        {
          "type": "object",
          "properties": {
            "name": {"type": "string"},
            "text": {"type": "string"},
            "isCancel": {"type": "boolean"},
            "isDefault": {"type": "boolean"}
          },
          "anyOf": [
            {"required": ["name"]},
            {"required": ["text"]}
          ]
        }
      ]
    },
    "table": {
      "type": "object",
      "properties": {
        "columns": {"type": "array", "items": {"type": "string"}},
        "rows": {"type": "array", "items": {"type": "object"}}
      },
      "required": ["rows"]
    }
  }
}`
